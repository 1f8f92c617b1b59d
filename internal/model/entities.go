package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// StringList stores a sequence of strings as a jsonb column. Used for
// inspection equipment tags, seizure evidence photo URLs and scan issues.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type %T for StringList", value)
	}
}

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string    `json:"name"`
	Email     string    `gorm:"uniqueIndex" json:"email"`
	Password  string    `json:"-"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type InspectionTask struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Officer    string     `json:"officer"`
	Date       string     `json:"date"`
	Location   string     `json:"location"`
	TargetType string     `json:"targetType"`
	Equipment  StringList `gorm:"type:jsonb" json:"equipment"`
	Status     string     `gorm:"index" json:"status"`
	UserID     uuid.UUID  `gorm:"type:uuid;index" json:"userId"`
	User       *User      `json:"user,omitempty"`
	CreatedAt  time.Time  `gorm:"index" json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

type ScanResult struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Company           string     `json:"company"`
	Product           string     `json:"product"`
	BatchNumber       string     `json:"batchNumber"`
	AuthenticityScore float64    `json:"authenticityScore"`
	Issues            StringList `gorm:"type:jsonb" json:"issues"`
	Recommendation    string     `json:"recommendation"`
	GeoLocation       string     `json:"geoLocation"`
	Timestamp         string     `json:"timestamp"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

type Seizure struct {
	ID             uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Quantity       string      `json:"quantity"`
	EstimatedValue string      `json:"estimatedValue"`
	WitnessName    string      `json:"witnessName"`
	EvidencePhotos StringList  `gorm:"type:jsonb" json:"evidencePhotos"`
	VideoEvidence  *string     `json:"videoEvidence,omitempty"`
	Status         string      `gorm:"index" json:"status"`
	UserID         uuid.UUID   `gorm:"type:uuid;index" json:"userId"`
	User           *User       `json:"user,omitempty"`
	ScanResultID   uuid.UUID   `gorm:"type:uuid;uniqueIndex" json:"scanResultId"`
	ScanResult     *ScanResult `json:"scanResult,omitempty"`
	LabSamples     []LabSample `json:"labSamples,omitempty"`
	FIRCases       []FIRCase   `json:"firCases,omitempty"`
	CreatedAt      time.Time   `gorm:"index" json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

type LabSample struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	SampleType     string    `json:"sampleType"`
	LabDestination string    `json:"labDestination"`
	Status         string    `gorm:"index" json:"status"`
	LabResult      *string   `json:"labResult,omitempty"`
	UserID         uuid.UUID `gorm:"type:uuid;index" json:"userId"`
	User           *User     `json:"user,omitempty"`
	SeizureID      uuid.UUID `gorm:"type:uuid;index" json:"seizureId"`
	Seizure        *Seizure  `json:"seizure,omitempty"`
	FIRCases       []FIRCase `json:"firCases,omitempty"`
	CreatedAt      time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type FIRCase struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	LabReportID   string     `json:"labReportId"`
	ViolationType string     `json:"violationType"`
	Accused       string     `json:"accused"`
	Location      string     `json:"location"`
	Status        string     `gorm:"index" json:"status"`
	CaseNotes     *string    `json:"caseNotes,omitempty"`
	CourtDate     *string    `json:"courtDate,omitempty"`
	Outcome       *string    `json:"outcome,omitempty"`
	UserID        uuid.UUID  `gorm:"type:uuid;index" json:"userId"`
	User          *User      `json:"user,omitempty"`
	SeizureID     *uuid.UUID `gorm:"type:uuid;index" json:"seizureId,omitempty"`
	Seizure       *Seizure   `json:"seizure,omitempty"`
	LabSampleID   *uuid.UUID `gorm:"type:uuid;index" json:"labSampleId,omitempty"`
	LabSample     *LabSample `json:"labSample,omitempty"`
	CreatedAt     time.Time  `gorm:"index" json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

func (FIRCase) TableName() string { return "fir_cases" }

// AuditLog is append-only; the reporting layer only reads it for the
// dashboard recent-activity feed.
type AuditLog struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Action    string          `json:"action"`
	Entity    string          `json:"entity"`
	EntityID  uuid.UUID       `gorm:"type:uuid" json:"entityId"`
	OldData   json.RawMessage `gorm:"type:jsonb" json:"oldData,omitempty"`
	NewData   json.RawMessage `gorm:"type:jsonb" json:"newData,omitempty"`
	UserID    uuid.UUID       `gorm:"type:uuid;index" json:"userId"`
	User      *User           `json:"user,omitempty"`
	CreatedAt time.Time       `gorm:"index" json:"createdAt"`
}
