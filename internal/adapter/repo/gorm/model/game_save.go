package model

import "time"

const TableNameGameSave = "game_saves"

// GameSave mapped from table <game_saves>
type GameSave struct {
	SaveKey   string    `gorm:"column:save_key;primaryKey" json:"save_key"`
	Payload   []byte    `gorm:"column:payload;not null" json:"payload"`
	Revision  int64     `gorm:"column:revision;not null" json:"revision"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

// TableName GameSave's table name
func (*GameSave) TableName() string {
	return TableNameGameSave
}
