package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"motor-kita.backend/pkg/nric"
)

// Section identifies one step of the onboarding wizard.
type Section string

const (
	SectionPlate    Section = "plate"
	SectionPersonal Section = "personal"
	SectionCar      Section = "car"
	SectionFunding  Section = "funding"
)

// SectionOrder is the fixed wizard order. Step index is the 1-based position
// of a section in this slice.
var SectionOrder = []Section{SectionPlate, SectionPersonal, SectionCar, SectionFunding}

// Index returns the 0-based ordinal of s, or -1 for an unknown section.
func (s Section) Index() int {
	for i, sec := range SectionOrder {
		if sec == s {
			return i
		}
	}
	return -1
}

// StepIndex returns the 1-based progress step for s.
func (s Section) StepIndex() int {
	return s.Index() + 1
}

// IdentificationType selects the validation rule for the identification value.
type IdentificationType string

const (
	IDTypeNRIC     IdentificationType = "NRIC"
	IDTypePassport IdentificationType = "Passport"
	IDTypeBRN      IdentificationType = "BRN"
)

// LookupPhase is the state of the plate ownership lookup protocol.
type LookupPhase string

const (
	LookupIdle       LookupPhase = "idle"
	LookupVerifying  LookupPhase = "verifying"
	LookupNewConfirm LookupPhase = "new_confirm"
	LookupChallenge  LookupPhase = "ownership_challenge"
	LookupPrefilled  LookupPhase = "prefilled"
)

// MaxChallengeAttempts is the number of last-4 secret submissions allowed per
// verification cycle.
const MaxChallengeAttempts = 3

// PersonalInfo is the applicant's identity and contact data.
type PersonalInfo struct {
	IDType       IdentificationType `json:"idType"`
	IDValue      string             `json:"idValue"`
	FullName     string             `json:"fullName"`
	Email        string             `json:"email"`
	Phone        string             `json:"phone"`
	AddressLine1 string             `json:"addressLine1"`
	Postcode     string             `json:"postcode"`
	City         string             `json:"city"`
	State        string             `json:"state"`
	EHailing     bool               `json:"eHailing"`
	Note         null.String        `json:"note,omitempty"`
}

// CarInfo is the vehicle being onboarded.
type CarInfo struct {
	Brand string `json:"brand"`
	Model string `json:"model"`
	Year  string `json:"year"`
}

// LookupState tracks one plate verification cycle.
type LookupState struct {
	Phase             LookupPhase `json:"phase"`
	Plate             string      `json:"plate,omitempty"` // canonical, set once verification starts
	AttemptsRemaining int         `json:"attemptsRemaining,omitempty"`
}

// SubmissionResult is the downstream processor's answer, success or failure.
type SubmissionResult struct {
	OK            bool   `json:"ok"`
	ApplicationID string `json:"applicationId,omitempty"`
	Message       string `json:"message,omitempty"`
}

// SubmissionState tracks the submit control for the funding section.
type SubmissionState struct {
	Pending bool              `json:"pending"`
	Result  *SubmissionResult `json:"result,omitempty"`
}

// OnboardingRecord is the single mutable aggregate owned by one session.
// All mutation goes through the usecase transition functions.
type OnboardingRecord struct {
	ID             uuid.UUID            `json:"id"`
	Plate          string               `json:"plate"`
	Personal       PersonalInfo         `json:"personal"`
	Car            CarInfo              `json:"car"`
	Derived        nric.DerivedIdentity `json:"derived"`
	ActiveSection  Section              `json:"activeSection"`
	PlateConfirmed bool                 `json:"plateConfirmed"`
	Attempted      map[Section]bool     `json:"attempted"`
	Lookup         LookupState          `json:"lookup"`
	Submission     SubmissionState      `json:"submission"`
	CreatedAt      time.Time            `json:"createdAt"`
	UpdatedAt      time.Time            `json:"updatedAt"`
}

// NewOnboardingRecord creates the empty record opened at session start.
func NewOnboardingRecord(now time.Time) *OnboardingRecord {
	return &OnboardingRecord{
		ID:            uuid.New(),
		Personal:      PersonalInfo{IDType: IDTypeNRIC},
		ActiveSection: SectionPlate,
		Attempted:     map[Section]bool{},
		Lookup:        LookupState{Phase: LookupIdle},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
