package model

import "time"

const TableNameGameSaveHistory = "game_save_history"

// GameSaveHistory mapped from table <game_save_history>
type GameSaveHistory struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement:true" json:"id"`
	SaveKey   string    `gorm:"column:save_key;not null" json:"save_key"`
	Revision  int64     `gorm:"column:revision;not null" json:"revision"`
	Payload   []byte    `gorm:"column:payload;not null" json:"payload"`
	WrittenAt time.Time `gorm:"column:written_at;not null" json:"written_at"`
}

// TableName GameSaveHistory's table name
func (*GameSaveHistory) TableName() string {
	return TableNameGameSaveHistory
}
