package entities

const BackupVersion = 1

// Backup is the full-state export document.
type Backup struct {
	Version      int                  `json:"version"`
	Timestamp    int64                `json:"timestamp"` // epoch ms
	Logs         []LogRecord          `json:"logs"`
	ActivityDefs []ActivityDefinition `json:"activityDefs"`
	Blocks       []BlockDefinition    `json:"blocks"`
}
