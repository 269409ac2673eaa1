package game

import "testing"

func TestStageByDayPartitionsTimeline(t *testing.T) {
	covered := map[int]StageID{}
	for _, s := range stageTable {
		for d := s.StartDay; d <= s.EndDay; d++ {
			if prev, dup := covered[d]; dup {
				t.Fatalf("day %d covered by both %s and %s", d, prev, s.ID)
			}
			covered[d] = s.ID
		}
	}
	for d := FirstDay; d <= LastDay; d++ {
		if _, ok := covered[d]; !ok {
			t.Fatalf("day %d not covered by any stage", d)
		}
		got := StageByDay(d)
		if !got.Contains(d) {
			t.Fatalf("StageByDay(%d)=%s does not contain the day", d, got.ID)
		}
	}
	for i := 1; i < len(stageTable); i++ {
		if stageTable[i].StartDay != stageTable[i-1].EndDay+1 {
			t.Fatalf("gap or overlap between %s and %s", stageTable[i-1].ID, stageTable[i].ID)
		}
	}
}

func TestStageByDayClampsOutOfRange(t *testing.T) {
	if got := StageByDay(31).ID; got != StageKensa {
		t.Fatalf("expected kensa past the table, got %s", got)
	}
	if got := StageByDay(999).ID; got != StageKensa {
		t.Fatalf("expected kensa far past the table, got %s", got)
	}
	if got := StageByDay(0).ID; got != StageKabuwake {
		t.Fatalf("expected kabuwake before the table, got %s", got)
	}
}

func TestStageByDayBoundaries(t *testing.T) {
	cases := []struct {
		day  int
		want StageID
	}{
		{1, StageKabuwake},
		{2, StageKabuwake},
		{3, StageUetsuke},
		{8, StageSakigari},
		{9, StageSeicho},
		{20, StageSeicho},
		{21, StageShukaku},
		{26, StageDorozome},
		{29, StageSeishoku},
		{30, StageKensa},
	}
	for _, tc := range cases {
		if got := StageByDay(tc.day).ID; got != tc.want {
			t.Fatalf("day %d: expected %s, got %s", tc.day, tc.want, got)
		}
	}
}

func TestNextStageStartDay(t *testing.T) {
	cases := []struct {
		stage StageID
		want  int
	}{
		{StageKabuwake, 3},
		{StageUetsuke, 6},
		{StageSeicho, 21},
		{StageSeishoku, 30},
		{StageKensa, 30},
		{StageID("unknown"), 30},
	}
	for _, tc := range cases {
		if got := NextStageStartDay(tc.stage); got != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.stage, tc.want, got)
		}
	}
}

func TestStageNumber(t *testing.T) {
	if StageNumber(StageKabuwake) != 1 || StageNumber(StageKensa) != 8 {
		t.Fatalf("unexpected stage numbering")
	}
	if StageNumber("nope") != 0 {
		t.Fatalf("unknown stage should number 0")
	}
}
