package models

import (
	"doctor-finder-service/internal/pkg/dto/responses"
	"strings"
)

// Doctor is a directory record as stored in the users collection. Empty scalar
// fields are treated as absent; a nil Coordinates means the clinic location is unknown.
type Doctor struct {
	ID                 string      `json:"id" bson:"_id" validate:"required"`
	Role               string      `json:"role,omitempty" bson:"role,omitempty"`
	FirstName          string      `json:"firstName,omitempty" bson:"firstName,omitempty"`
	LastName           string      `json:"lastName,omitempty" bson:"lastName,omitempty"`
	ClinicName         string      `json:"clinicName,omitempty" bson:"clinicName,omitempty"`
	Degree             string      `json:"degree,omitempty" bson:"degree,omitempty"`
	Specialty          string      `json:"specialty,omitempty" bson:"specialty,omitempty"`
	StreetAddress      string      `json:"streetAddress,omitempty" bson:"streetAddress,omitempty"`
	City               string      `json:"city,omitempty" bson:"city,omitempty"`
	State              string      `json:"state,omitempty" bson:"state,omitempty"`
	ZipCode            string      `json:"zipCode,omitempty" bson:"zipCode,omitempty"`
	AcceptedInsurances []string    `json:"acceptedInsurances,omitempty" bson:"acceptedInsurances,omitempty"`
	SpokenLanguages    []string    `json:"spokenLanguages,omitempty" bson:"spokenLanguages,omitempty"`
	Coordinates        *Coordinate `json:"coordinates,omitempty" bson:"coordinates,omitempty" validate:"omitempty"`
}

// Coordinate is a point in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat" bson:"lat" validate:"latitude"`
	Lng float64 `json:"lng" bson:"lng" validate:"longitude"`
}

// DoctorFilters holds the structured filter selections. An empty value is unset.
type DoctorFilters struct {
	Insurance string `json:"insurance,omitempty"`
	City      string `json:"city,omitempty"`
	Specialty string `json:"specialty,omitempty"`
}

func (f DoctorFilters) IsEmpty() bool {
	return f.Insurance == "" && f.City == "" && f.Specialty == ""
}

type DoctorSearchQuery struct {
	Text    string
	Filters DoctorFilters
}

// FilterOptions lists the distinct values selectable in each filter menu.
type FilterOptions struct {
	Insurances  []string `json:"insurances"`
	Cities      []string `json:"cities"`
	Specialties []string `json:"specialties"`
}

func (d Doctor) FullName() string {
	switch {
	case d.FirstName == "":
		return d.LastName
	case d.LastName == "":
		return d.FirstName
	}
	return d.FirstName + " " + d.LastName
}

// Location renders the clinic address as "street, city, state zip".
func (d Doctor) Location() string {
	parts := make([]string, 0, 3)
	for _, part := range []string{d.StreetAddress, d.City, d.State} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.TrimSpace(strings.Join(parts, ", ") + " " + d.ZipCode)
}

func (d Doctor) ConvertIntoResponse() responses.Doctor {
	return responses.Doctor{
		ID:                 d.ID,
		Name:               d.FullName(),
		FirstName:          d.FirstName,
		LastName:           d.LastName,
		ClinicName:         d.ClinicName,
		Degree:             d.Degree,
		Specialty:          d.Specialty,
		Location:           d.Location(),
		StreetAddress:      d.StreetAddress,
		City:               d.City,
		State:              d.State,
		ZipCode:            d.ZipCode,
		AcceptedInsurances: d.AcceptedInsurances,
		SpokenLanguages:    d.SpokenLanguages,
	}
}

func (o FilterOptions) ConvertIntoResponse() responses.FilterOptions {
	return responses.FilterOptions{
		Insurances:  o.Insurances,
		Cities:      o.Cities,
		Specialties: o.Specialties,
	}
}
