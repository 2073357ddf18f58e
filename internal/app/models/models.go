package models

// StudentStatus defines the lifecycle state of a student record.
type StudentStatus string

const (
	StudentActive    StudentStatus = "active"
	StudentGraduated StudentStatus = "graduated"
	StudentSuspended StudentStatus = "suspended"
	StudentWithdrawn StudentStatus = "withdrawn"
)

// ProgrammeLevel defines the qualification level of a programme.
type ProgrammeLevel string

const (
	LevelCertificate ProgrammeLevel = "certificate"
	LevelDiploma     ProgrammeLevel = "diploma"
	LevelDegree      ProgrammeLevel = "degree"
	LevelMasters     ProgrammeLevel = "masters"
	LevelPhD         ProgrammeLevel = "phd"
)

// EnrolmentStatus defines the progress state of an enrolment.
type EnrolmentStatus string

const (
	EnrolmentNotStarted EnrolmentStatus = "not-started"
	EnrolmentInProgress EnrolmentStatus = "in-progress"
	EnrolmentCompleted  EnrolmentStatus = "completed"
	EnrolmentWithdrawn  EnrolmentStatus = "withdrawn"
)

// ValidStudentStatus reports whether s is a known student status.
func ValidStudentStatus(s string) bool {
	switch StudentStatus(s) {
	case StudentActive, StudentGraduated, StudentSuspended, StudentWithdrawn:
		return true
	}
	return false
}

// ValidProgrammeLevel reports whether l is a known programme level.
func ValidProgrammeLevel(l string) bool {
	switch ProgrammeLevel(l) {
	case LevelCertificate, LevelDiploma, LevelDegree, LevelMasters, LevelPhD:
		return true
	}
	return false
}

// ValidEnrolmentStatus reports whether s is a known enrolment status.
func ValidEnrolmentStatus(s string) bool {
	switch EnrolmentStatus(s) {
	case EnrolmentNotStarted, EnrolmentInProgress, EnrolmentCompleted, EnrolmentWithdrawn:
		return true
	}
	return false
}
