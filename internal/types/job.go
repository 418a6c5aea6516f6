// Package types provides type definitions for structured data used throughout the GlobalPath agent.
package types

import "fmt"

// Region identifies the hiring region a job belongs to.
type Region string

// Region values. RegionAll is the unconstrained filter value, never a job attribute.
const (
	RegionAll    Region = "ALL"
	RegionGCC    Region = "GCC"
	RegionEurope Region = "EUROPE"
)

// ParseRegion converts a raw string to a Region, returning an error for
// unknown values.
func ParseRegion(s string) (Region, error) {
	r := Region(s)
	switch r {
	case RegionAll, RegionGCC, RegionEurope:
		return r, nil
	}
	return "", fmt.Errorf("unknown region %q", s)
}

// JobType distinguishes blue-collar from professional roles.
type JobType string

// JobType values. TypeAll is the unconstrained filter value.
const (
	TypeAll          JobType = "ALL"
	TypeBlueCollar   JobType = "blue-collar"
	TypeProfessional JobType = "professional"
)

// ParseJobType converts a raw string to a JobType, returning an error for
// unknown values.
func ParseJobType(s string) (JobType, error) {
	t := JobType(s)
	switch t {
	case TypeAll, TypeBlueCollar, TypeProfessional:
		return t, nil
	}
	return "", fmt.Errorf("unknown job type %q", s)
}

// Site identifies the job site a posting was aggregated from.
type Site string

// Site values mirror the scraper sources the catalog is aggregated from.
const (
	SiteBayt   Site = "bayt"
	SiteNaukri Site = "naukri"
	SiteIndeed Site = "indeed"
	SiteGoogle Site = "google"
)

// ContactInfo holds the recruiter contact block attached to some postings.
type ContactInfo struct {
	Recruiter string `json:"recruiter"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// Job is a single posting in the aggregated catalog. Instances are loaded at
// process start and live for the life of the process; the only field that
// mutates afterwards is ImageRef.
type Job struct {
	ID              string       `json:"id"`
	Title           string       `json:"title"`
	Company         string       `json:"company"`
	Location        string       `json:"location"`
	Region          Region       `json:"region"`
	Description     string       `json:"description"`
	FullDescription string       `json:"full_description,omitempty"`
	SalaryHint      string       `json:"salary_hint"`
	PostDate        string       `json:"post_date"`
	Site            Site         `json:"site"`
	Type            JobType      `json:"type"`
	SubCategory     string       `json:"sub_category"`
	ImageRef        string       `json:"image_ref,omitempty"`
	IsVerified      bool         `json:"is_verified,omitempty"`
	ContactInfo     *ContactInfo `json:"contact_info,omitempty"`
}

// Overview returns the long-form description when present, falling back to
// the short description.
func (j Job) Overview() string {
	if j.FullDescription != "" {
		return j.FullDescription
	}
	return j.Description
}
