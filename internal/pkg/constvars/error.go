package constvars

// Validation messages for query params, map it with respective tag field
var CustomValidationErrorMessages = map[string]string{
	"required":      "is required",
	"required_with": "is required when %s is set",
	"latitude":      "must be a valid latitude",
	"longitude":     "must be a valid longitude",
	"max":           "maximum at %s characters long",
	"min":           "must be at least %s characters long",
}

// TagsWithParams lists the validation tags whose message embeds the tag param.
var TagsWithParams = map[string]bool{
	"required_with": true,
	"max":           true,
	"min":           true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientDoctorNotFound                = "doctor not found"
	ErrClientInvalidAvailabilityData       = "the doctor's availability data is invalid"
	ErrClientInvalidCoordinate             = "the given coordinate is invalid"
)

// Error messages for developers
const (
	ErrDevCannotParseJSON        = "cannot parse JSON"
	ErrDevCannotMarshalJSON      = "cannot marshal JSON"
	ErrDevValidationFailed       = "validation failed"
	ErrDevInvalidQueryParam      = "invalid query param %s"
	ErrDevURLParamRequired       = "url param %s is required"
	ErrDevDoctorNotFound         = "doctor %s not found"
	ErrDevServerProcess          = "server failed to process the request"
	ErrDevServerDeadlineExceeded = "deadline exceeded"

	// Availability messages
	ErrDevMalformedAvailabilityDate     = "malformed availability date key %q"
	ErrDevMalformedAvailabilityTime     = "malformed availability time %q on %s"
	ErrDevMalformedAvailabilityDocument = "malformed availability document for doctor %s"

	// Distance messages
	ErrDevNonFiniteCoordinate = "coordinate field %s is not a finite number"

	// Database messages
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents on database"
	ErrDevDBFailedToDecodeDocument   = "failed to decode document from database"
	ErrDevDBFailedToUpsertDocument   = "failed to upsert document into database"

	// Redis messages
	ErrDevRedisGetNoData  = "failed to get data with key %s from redis"
	ErrDevRedisSetData    = "failed to set data into redis"
	ErrDevRedisDeleteData = "failed to delete data from redis"
	ErrDevRedisSAdd       = "failed to add members into redis set"
	ErrDevRedisSMembers   = "failed to get members of redis set"
	ErrDevRedisExpire     = "failed to extend expiration of redis key"
	ErrDevRedisUnlock     = "failed to release redis lock"

	// RabbitMQ messages
	ErrDevRabbitMQPublishMessage = "failed to publish message into queue %s"
	ErrDevRabbitMQConsumeQueue   = "failed to consume queue %s"
	ErrDevRabbitMQUnknownEvent   = "unknown directory event type %q"

	// Minio messages
	ErrDevMinioGetObject = "failed to get object %s from bucket %s"
)

const (
	ErrFileLocationUnknown = "file location unknown"
	ErrFunctionNameUnknown = "function name unknown"
)
