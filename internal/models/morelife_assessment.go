package models

import (
	"time"

	"gorm.io/gorm"
)

// MoreLife session types and their fixed prices in Naira
const (
	SessionTypePrivate2Weeks = "private_2weeks"
	SessionTypePrivate1Week  = "private_1week"
	SessionTypeJoint         = "joint"
)

var moreLifePricing = map[string]float64{
	SessionTypePrivate2Weeks: 85000,
	SessionTypePrivate1Week:  45000,
	SessionTypeJoint:         30000,
}

// MoreLifePrice returns the session fee for a session type, or 0 for
// an unrecognized type.
func MoreLifePrice(sessionType string) float64 {
	return moreLifePricing[sessionType]
}

// MoreLifeAssessment represents a wellness-assessment intake form
type MoreLifeAssessment struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	AssessmentID        string `gorm:"type:varchar(20);uniqueIndex" json:"assessment_id"`
	Name                string `gorm:"type:varchar(255)" json:"name"`
	Location            string `gorm:"type:varchar(255)" json:"location"`
	Email               string `gorm:"type:varchar(255);index" json:"email"`
	Age                 int    `json:"age"`
	Education           string `gorm:"type:varchar(255)" json:"education"`
	SpecificChallenge   string `gorm:"type:text" json:"specific_challenge"`
	LikelyCause         string `gorm:"type:text" json:"likely_cause"`
	DurationOfChallenge string `gorm:"type:varchar(255)" json:"duration_of_challenge"`
	TriggeringIncident  string `gorm:"type:text" json:"triggering_incident"`
	OnDrugs             string `gorm:"type:varchar(50)" json:"on_drugs"`
	CommencementMonth   string `gorm:"type:varchar(100)" json:"commencement_month"`
	SessionType         string `gorm:"type:varchar(50)" json:"session_type"`

	Status           string        `gorm:"type:varchar(50);default:'pending'" json:"status"` // pending, reviewed, approved, rejected
	Amount           float64       `gorm:"type:decimal(15,2);default:0" json:"amount"`
	PaymentStatus    PaymentStatus `gorm:"type:varchar(50);default:'pending'" json:"payment_status"`
	PaymentReference string        `gorm:"type:varchar(100);index" json:"payment_reference"`
}

func (a *MoreLifeAssessment) PublicRef() string     { return a.AssessmentID }
func (a *MoreLifeAssessment) PayerEmail() string    { return a.Email }
func (a *MoreLifeAssessment) ChargeAmount() float64 { return a.Amount }
func (a *MoreLifeAssessment) RefPrefix() string     { return "ML" }

func (a *MoreLifeAssessment) CompletionColumns() map[string]interface{} {
	return map[string]interface{}{
		"status":         "approved",
		"payment_status": PaymentStatusCompleted,
	}
}
