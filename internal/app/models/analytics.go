package models

import "time"

// Overview holds the headline record counts.
type Overview struct {
	TotalStudents   int64 `json:"totalStudents"`
	TotalProgrammes int64 `json:"totalProgrammes"`
	TotalModules    int64 `json:"totalModules"`
	TotalEnrolments int64 `json:"totalEnrolments"`
}

// StatusCount is one bucket of a group-by-status facet.
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// FacultyCount is one bucket of the students-by-faculty facet.
type FacultyCount struct {
	Faculty string `json:"faculty"`
	Count   int64  `json:"count"`
}

// DateCount is one calendar-day bucket of the recent-enrolments facet.
// Date is an ISO date string (YYYY-MM-DD).
type DateCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// ProgrammeCount is one bucket of the top-programmes facet.
type ProgrammeCount struct {
	Programme string `json:"programme"`
	Count     int64  `json:"count"`
}

// Distributions groups the count-by-value facets of a snapshot.
type Distributions struct {
	StudentsByStatus   []StatusCount  `json:"studentsByStatus"`
	StudentsByFaculty  []FacultyCount `json:"studentsByFaculty"`
	EnrolmentsByStatus []StatusCount  `json:"enrolmentsByStatus"`
}

// Trends groups the time- and ranking-based facets of a snapshot.
type Trends struct {
	RecentEnrolments []DateCount      `json:"recentEnrolments"`
	TopProgrammes    []ProgrammeCount `json:"topProgrammes"`
}

// Snapshot is a point-in-time aggregation of system-wide statistics.
// Facets are computed from independently-read views, so minor skew
// between them under concurrent writes is acceptable.
type Snapshot struct {
	Overview      Overview      `json:"overview"`
	Distributions Distributions `json:"distributions"`
	Trends        Trends        `json:"trends"`
	Timestamp     time.Time     `json:"timestamp"`
}

// Analytics is a snapshot plus its narrated insights, as served to
// API consumers and pushed to realtime clients.
type Analytics struct {
	Snapshot
	Insights string `json:"insights"`
}

// EmptySnapshot returns a snapshot with zero counts and empty (non-nil)
// facet slices, used both for empty datasets and as the aggregation
// failure fallback.
func EmptySnapshot(now time.Time) Snapshot {
	return Snapshot{
		Distributions: Distributions{
			StudentsByStatus:   []StatusCount{},
			StudentsByFaculty:  []FacultyCount{},
			EnrolmentsByStatus: []StatusCount{},
		},
		Trends: Trends{
			RecentEnrolments: []DateCount{},
			TopProgrammes:    []ProgrammeCount{},
		},
		Timestamp: now,
	}
}
