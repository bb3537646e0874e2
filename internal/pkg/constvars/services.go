package constvars

import "time"

const (
	MongoCollectionUsers        = "users"
	MongoCollectionAvailability = "availability"
)

const (
	RedisKeyFilterOptionsPrefix = "filter_options:"
	RedisKeyFilterOptionsSet    = "filter_options:keys"
	RedisKeyFilterOptionsLeader = "filteroptions:leader"
)

const (
	// WorkdayCutoffHour is the local hour from which same-day slots are no longer offered.
	WorkdayCutoffHour = 17

	AvailabilityDateLayout   = "2006-01-02"
	AvailabilityTimeLayout   = "15:04"
	NextAvailableLabelLayout = "Mon, Jan 2"
	NoAvailabilityLabel      = "No availability"
)

const (
	// EarthRadiusInMiles is the mean earth radius used for haversine distances.
	EarthRadiusInMiles = 3958.8

	DefaultDistanceCacheSize = 10000
)

const (
	// DoctorCardPreviewSize is how many insurances and languages a card lists before "+N more".
	DoctorCardPreviewSize = 3
)

const (
	DirectoryEventDoctorsChanged      = "doctors.changed"
	DirectoryEventAvailabilityChanged = "availability.changed"
)

const (
	DefaultControllerTimeout = 10 * time.Second
	LeaderLockTTL            = 2 * time.Minute
)

const (
	URLParamDoctorID = "doctorId"

	QueryParamQuery      = "query"
	QueryParamInsurance  = "insurance"
	QueryParamCity       = "city"
	QueryParamSpecialty  = "specialty"
	QueryParamLat        = "lat"
	QueryParamLng        = "lng"
	QueryParamPatientLat = "patientLat"
	QueryParamPatientLng = "patientLng"
	QueryParamClinicLat  = "clinicLat"
	QueryParamClinicLng  = "clinicLng"
)
