package constants

// ==========================
// Course types (fixed curriculum enum)
// ==========================
const (
	CourseNazra       = "Nazra"
	CourseTajweed     = "Tajweed"
	CourseHifz        = "Hifz"
	CourseTranslation = "Translation"
	CourseTafseer     = "Tafseer"
)

var CourseTypes = []string{
	CourseNazra,
	CourseTajweed,
	CourseHifz,
	CourseTranslation,
	CourseTafseer,
}

func IsValidCourseType(ct string) bool {
	for _, c := range CourseTypes {
		if c == ct {
			return true
		}
	}
	return false
}

// ==========================
// Class schedule statuses
// ==========================
const (
	ScheduleStatusScheduled = "scheduled"
	ScheduleStatusCompleted = "completed"
	ScheduleStatusCancelled = "cancelled"
	ScheduleStatusMissed    = "missed"
)

// ==========================
// Account statuses
// ==========================
const (
	AccountStatusPending  = "pending"
	AccountStatusApproved = "approved"
	AccountStatusBlocked  = "blocked"
)

// ==========================
// Resource request statuses
// ==========================
const (
	RequestStatusPending  = "pending"
	RequestStatusApproved = "approved"
	RequestStatusRejected = "rejected"
)

// ==========================
// Notification types
// ==========================
const (
	NotifClassScheduled   = "class_scheduled"
	NotifClassCancelled   = "class_cancelled"
	NotifClassRescheduled = "class_rescheduled"
	NotifClassCompleted   = "class_completed"
	NotifResourceApproved = "resource_approved"
	NotifResourceRejected = "resource_rejected"
	NotifAccountApproved  = "account_approved"
	NotifPaymentReceived  = "payment_received"
)

// ==========================
// Activity log actions
// ==========================
const (
	ActivityLogin         = "login"
	ActivityView          = "view"
	ActivityClassAttended = "class_attended"
	ActivityProgressNote  = "progress_note"
)

// ==========================
// Plans
// ==========================
const (
	PlanFree    = "free"
	PlanBasic   = "basic"
	PlanPremium = "premium"
)

// PlanPrices in IDR, consumed by the payment charge flow.
var PlanPrices = map[string]int64{
	PlanBasic:   150000,
	PlanPremium: 300000,
}
