package entities

type TillageImplement string

const (
	ImplementCultivator TillageImplement = "cultivator"
	ImplementDiscHarrow TillageImplement = "disc_harrow"
	ImplementPlow       TillageImplement = "plow"
	ImplementRotovator  TillageImplement = "rotovator"
	ImplementOther      TillageImplement = "other"
)

type TillageDirection string

const (
	DirectionLengthwise TillageDirection = "lengthwise"
	DirectionCrosswise  TillageDirection = "crosswise"
	DirectionDiagonal   TillageDirection = "diagonal"
)

// LogRecord is one dated occurrence of an activity on a block.
// Type references ActivityDefinition.ID but is not enforced; BlockID holds a block name.
type LogRecord struct {
	ID        string   `json:"id"`
	Date      string   `json:"date"` // YYYY-MM-DD
	Type      string   `json:"type"`
	BlockID   string   `json:"blockId"`
	Section   string   `json:"section,omitempty"`
	StartTime string   `json:"startTime,omitempty"` // HH:mm
	EndTime   string   `json:"endTime,omitempty"`   // HH:mm
	Details   string   `json:"details"`
	Quantity  *float64 `json:"quantity,omitempty"`
	Unit      string   `json:"unit,omitempty"`
	Cost      *float64 `json:"cost,omitempty"`
	Notes     string   `json:"notes,omitempty"`

	TillageImplement TillageImplement `json:"tillageImplement,omitempty"`
	TillageDirection TillageDirection `json:"tillageDirection,omitempty"`

	CreatedAt int64 `json:"createdAt"` // epoch ms
}

// CostOrZero treats an absent cost as 0.
func (r LogRecord) CostOrZero() float64 {
	if r.Cost == nil {
		return 0
	}
	return *r.Cost
}

// LogDraft is the user-supplied part of a record; id and createdAt are assigned on add.
type LogDraft struct {
	Date             string           `json:"date"`
	Type             string           `json:"type"`
	BlockID          string           `json:"blockId"`
	Section          string           `json:"section,omitempty"`
	StartTime        string           `json:"startTime,omitempty"`
	EndTime          string           `json:"endTime,omitempty"`
	Details          string           `json:"details"`
	Quantity         *float64         `json:"quantity,omitempty"`
	Unit             string           `json:"unit,omitempty"`
	Cost             *float64         `json:"cost,omitempty"`
	Notes            string           `json:"notes,omitempty"`
	TillageImplement TillageImplement `json:"tillageImplement,omitempty"`
	TillageDirection TillageDirection `json:"tillageDirection,omitempty"`
}

// Record materializes the draft with the given identity.
func (d LogDraft) Record(id string, createdAt int64) LogRecord {
	return LogRecord{
		ID:               id,
		Date:             d.Date,
		Type:             d.Type,
		BlockID:          d.BlockID,
		Section:          d.Section,
		StartTime:        d.StartTime,
		EndTime:          d.EndTime,
		Details:          d.Details,
		Quantity:         d.Quantity,
		Unit:             d.Unit,
		Cost:             d.Cost,
		Notes:            d.Notes,
		TillageImplement: d.TillageImplement,
		TillageDirection: d.TillageDirection,
		CreatedAt:        createdAt,
	}
}
