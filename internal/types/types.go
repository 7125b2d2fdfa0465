// Package types defines core data structures for the project pulse record store.
package types

import (
	"fmt"
	"time"
)

// Project is a road construction project tracked by the business.
type Project struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	NumWorkers    int           `json:"numWorkers"`
	CreatedBy     string        `json:"createdBy"`
	CreatedAt     time.Time     `json:"createdAt"`
	Status        ProjectStatus `json:"status,omitempty"`
	TotalDistance float64       `json:"totalDistance,omitempty"` // metres of road contracted
}

// RecordID returns the opaque record identifier.
func (p Project) RecordID() string { return p.ID }

// Validate checks if the project has valid field values.
func (p Project) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	if p.NumWorkers < 0 {
		return fmt.Errorf("numWorkers cannot be negative (got %d)", p.NumWorkers)
	}
	if !p.Status.IsValid() {
		return fmt.Errorf("invalid project status: %s", p.Status)
	}
	return nil
}

// ProjectStatus represents the current state of a project.
type ProjectStatus string

// Project status constants
const (
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
	ProjectOnHold    ProjectStatus = "on_hold"
	ProjectPlanning  ProjectStatus = "planning"
)

// IsValid checks if the status value is valid.
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectActive, ProjectCompleted, ProjectOnHold, ProjectPlanning:
		return true
	}
	return false
}

// Photo is a media reference captured in the field. Coordinates are
// supplied by an external capture utility and stored as-is.
type Photo struct {
	URL       string     `json:"url"`
	Latitude  float64    `json:"latitude,omitempty"`
	Longitude float64    `json:"longitude,omitempty"`
	TakenAt   *time.Time `json:"takenAt,omitempty"`
}

// ProgressEntry records one day of field progress on a project.
//
// PaymentRequests is a soft back-reference list of PaymentRequest ids.
// The store performs no referential checks on it; callers keep it
// consistent (see repo.ProgressEntries.AttachPaymentRequest).
type ProgressEntry struct {
	ID                string      `json:"id"`
	ProjectID         string      `json:"projectId"`
	Date              time.Time   `json:"date"`
	DistanceCompleted float64     `json:"distanceCompleted"` // metres
	TimeSpent         float64     `json:"timeSpent"`         // hours
	WorkersPresent    int         `json:"workersPresent"`
	Notes             string      `json:"notes,omitempty"`
	Photos            []Photo     `json:"photos,omitempty"`
	PaymentRequests   []string    `json:"paymentRequests,omitempty"`
	Status            EntryStatus `json:"status,omitempty"`
	SubmittedBy       string      `json:"submittedBy,omitempty"`
	ReviewedBy        string      `json:"reviewedBy,omitempty"`
	// IsLocked marks an entry as closed for edits after checker approval.
	// The lock is a convention between callers, not enforced by the store.
	IsLocked bool `json:"isLocked,omitempty"`
}

// RecordID returns the opaque record identifier.
func (e ProgressEntry) RecordID() string { return e.ID }

// Validate checks if the entry has valid field values.
func (e ProgressEntry) Validate() error {
	if e.ProjectID == "" {
		return fmt.Errorf("projectId is required")
	}
	if e.DistanceCompleted < 0 {
		return fmt.Errorf("distanceCompleted cannot be negative")
	}
	if e.TimeSpent < 0 {
		return fmt.Errorf("timeSpent cannot be negative")
	}
	if e.WorkersPresent < 0 {
		return fmt.Errorf("workersPresent cannot be negative")
	}
	if !e.Status.IsValid() {
		return fmt.Errorf("invalid entry status: %s", e.Status)
	}
	return nil
}

// EntryStatus represents the review state of a progress entry.
type EntryStatus string

// Progress entry status constants
const (
	EntryDraft               EntryStatus = "draft"
	EntrySubmitted           EntryStatus = "submitted"
	EntryApproved            EntryStatus = "approved"
	EntryRejected            EntryStatus = "rejected"
	EntryLocked              EntryStatus = "locked"
	EntryCorrectionRequested EntryStatus = "correction-requested"
)

// IsValid checks if the status value is valid.
func (s EntryStatus) IsValid() bool {
	switch s {
	case EntryDraft, EntrySubmitted, EntryApproved, EntryRejected, EntryLocked, EntryCorrectionRequested:
		return true
	}
	return false
}

// PaymentPurpose tags what a payment request pays for.
type PaymentPurpose string

// Payment purpose constants. Purpose tags are open-ended in the persisted
// shape; these are the ones the application offers by default.
const (
	PurposeFood     PaymentPurpose = "food"
	PurposeFuel     PaymentPurpose = "fuel"
	PurposeLabour   PaymentPurpose = "labour"
	PurposeVehicle  PaymentPurpose = "vehicle"
	PurposeMaterial PaymentPurpose = "material"
	PurposeWater    PaymentPurpose = "water"
	PurposeOther    PaymentPurpose = "other"
)

// StatusChange is one entry in a payment request's audit trail.
type StatusChange struct {
	Status    PaymentStatus `json:"status"`
	ChangedBy string        `json:"changedBy"`
	ChangedAt time.Time     `json:"changedAt"`
	Comments  string        `json:"comments,omitempty"`
}

// PaymentRequest is a request for money raised by a leader against field
// progress. StatusHistory is append-only: the first entry mirrors the
// status at creation and every real status change appends exactly one
// entry whose status equals the record's current status.
type PaymentRequest struct {
	ID            string                     `json:"id"`
	ProjectID     string                     `json:"projectId"`
	Amount        float64                    `json:"amount"`
	Description   string                     `json:"description,omitempty"`
	Purposes      []PaymentPurpose           `json:"purposes"`
	PurposeCosts  map[PaymentPurpose]float64 `json:"purposeCosts,omitempty"`
	Photos        []Photo                    `json:"photos,omitempty"`
	Status        PaymentStatus              `json:"status"`
	RequestedBy   string                     `json:"requestedBy"`
	RequestedAt   time.Time                  `json:"requestedAt"`
	ReviewedBy    string                     `json:"reviewedBy,omitempty"`
	ReviewedAt    *time.Time                 `json:"reviewedAt,omitempty"`
	ScheduledDate *time.Time                 `json:"scheduledDate,omitempty"`
	PaidDate      *time.Time                 `json:"paidDate,omitempty"`
	Comments      string                     `json:"comments,omitempty"`
	StatusHistory []StatusChange             `json:"statusHistory"`
}

// RecordID returns the opaque record identifier.
func (r PaymentRequest) RecordID() string { return r.ID }

// Validate checks if the request has valid field values.
// Transition legality is checked separately by the repository against
// the stored record (see PaymentStatus.CanTransitionTo).
func (r PaymentRequest) Validate() error {
	if r.ProjectID == "" {
		return fmt.Errorf("projectId is required")
	}
	if r.Amount < 0 {
		return fmt.Errorf("amount cannot be negative (got %.2f)", r.Amount)
	}
	if len(r.Purposes) == 0 {
		return fmt.Errorf("at least one purpose is required")
	}
	if !r.Status.IsValid() {
		return fmt.Errorf("invalid payment status: %s", r.Status)
	}
	if r.RequestedBy == "" {
		return fmt.Errorf("requestedBy is required")
	}
	return nil
}

// PaymentStatus represents the current state of a payment request.
type PaymentStatus string

// Payment status constants. This is the canonical set: the scheduled
// state sits between approval and payment for requests paid on a later
// date rather than immediately.
const (
	PaymentPending   PaymentStatus = "pending"
	PaymentApproved  PaymentStatus = "approved"
	PaymentRejected  PaymentStatus = "rejected"
	PaymentScheduled PaymentStatus = "scheduled"
	PaymentPaid      PaymentStatus = "paid"
)

// paymentTransitions is the explicit transition table: from-status to the
// set of statuses it may move to. Absent statuses are terminal.
var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentPending:   {PaymentApproved, PaymentRejected},
	PaymentApproved:  {PaymentScheduled, PaymentPaid},
	PaymentScheduled: {PaymentPaid},
}

// IsValid checks if the status value is valid.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentApproved, PaymentRejected, PaymentScheduled, PaymentPaid:
		return true
	}
	return false
}

// IsTerminal reports whether no transition leads out of the status.
func (s PaymentStatus) IsTerminal() bool {
	return s.IsValid() && len(paymentTransitions[s]) == 0
}

// CanTransitionTo reports whether the transition s -> to is legal.
// Self-transitions are not covered here: writing the same status again
// is a plain update, not a transition.
func (s PaymentStatus) CanTransitionTo(to PaymentStatus) bool {
	for _, allowed := range paymentTransitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Label returns the status in title form for display and notification
// titles ("Payment Request Approved").
func (s PaymentStatus) Label() string {
	switch s {
	case PaymentPending:
		return "Pending"
	case PaymentApproved:
		return "Approved"
	case PaymentRejected:
		return "Rejected"
	case PaymentScheduled:
		return "Scheduled"
	case PaymentPaid:
		return "Paid"
	}
	return string(s)
}

// NotificationType categorizes a notification.
type NotificationType string

// Notification type constants
const (
	NotifyPaymentStatus NotificationType = "payment_status"
	NotifyGeneral       NotificationType = "general"
)

// IsValid checks if the notification type is valid.
func (t NotificationType) IsValid() bool {
	switch t {
	case NotifyPaymentStatus, NotifyGeneral:
		return true
	}
	return false
}

// Notification is an in-app message addressed to one user. Created as a
// side effect of payment status changes; only ever mutated by marking read.
type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"userId"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	RelatedID string           `json:"relatedId,omitempty"`
	IsRead    bool             `json:"isRead"`
	CreatedAt time.Time        `json:"createdAt"`
}

// RecordID returns the opaque record identifier.
func (n Notification) RecordID() string { return n.ID }

// UserRole represents what a user may do in the application.
type UserRole string

// User role constants
const (
	RoleAdmin   UserRole = "admin"
	RoleLeader  UserRole = "leader"
	RoleChecker UserRole = "checker"
	RoleOwner   UserRole = "owner"
)

// IsValid checks if the role value is valid.
func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleLeader, RoleChecker, RoleOwner:
		return true
	}
	return false
}

// User is an application account.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Role      UserRole  `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// RecordID returns the opaque record identifier.
func (u User) RecordID() string { return u.ID }

// Validate checks if the user has valid field values.
func (u User) Validate() error {
	if u.Name == "" {
		return fmt.Errorf("name is required")
	}
	if !u.Role.IsValid() {
		return fmt.Errorf("invalid user role: %s", u.Role)
	}
	return nil
}

// VehicleType categorizes machinery and transport.
type VehicleType string

// Vehicle type constants
const (
	VehicleTruck   VehicleType = "truck"
	VehicleTractor VehicleType = "tractor"
	VehicleJCB     VehicleType = "jcb"
	VehicleRoller  VehicleType = "roller"
	VehicleOther   VehicleType = "other"
)

// IsValid checks if the vehicle type is valid.
func (t VehicleType) IsValid() bool {
	switch t {
	case VehicleTruck, VehicleTractor, VehicleJCB, VehicleRoller, VehicleOther:
		return true
	}
	return false
}

// Vehicle is a machine or transport owned or hired by the business.
type Vehicle struct {
	ID                 string      `json:"id"`
	Model              string      `json:"model"`
	RegistrationNumber string      `json:"registrationNumber,omitempty"`
	Type               VehicleType `json:"type"`
	CreatedAt          time.Time   `json:"createdAt"`
}

// RecordID returns the opaque record identifier.
func (v Vehicle) RecordID() string { return v.ID }

// DriverType distinguishes payroll drivers from hired ones.
type DriverType string

// Driver type constants
const (
	DriverInternal DriverType = "internal"
	DriverExternal DriverType = "external"
)

// IsValid checks if the driver type is valid.
func (t DriverType) IsValid() bool {
	switch t {
	case DriverInternal, DriverExternal:
		return true
	}
	return false
}

// Driver operates vehicles on project sites.
type Driver struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	LicenseNumber string     `json:"licenseNumber,omitempty"`
	Phone         string     `json:"phone,omitempty"`
	Type          DriverType `json:"type"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// RecordID returns the opaque record identifier.
func (d Driver) RecordID() string { return d.ID }
