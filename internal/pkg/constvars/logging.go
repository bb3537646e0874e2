package constvars

const (
	LoggingRequestIDKey  = "request_id"
	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"
	LoggingOperationKey  = "operation"

	LoggingDoctorIDKey          = "doctor_id"
	LoggingDoctorCountKey       = "doctor_count"
	LoggingMatchedCountKey      = "matched_count"
	LoggingFiltersKey           = "filters"
	LoggingCalendarDatesKey     = "calendar_dates"
	LoggingDistanceCacheKey     = "distance_cache_key"
	LoggingDistanceMilesKey     = "distance_miles"
	LoggingRedisKey             = "redis_key"
	LoggingCachedKeysCountKey   = "cached_keys_count"
	LoggingLockValueKey         = "lock_value"
	LoggingLockStoredValueKey   = "lock_stored_value"
	LoggingLockExpectedValueKey = "lock_expected_value"
	LoggingLockExpirationKey    = "lock_expiration"
	LoggingQueueNameKey         = "queue_name"
	LoggingEventTypeKey         = "event_type"
	LoggingObjectKey            = "object_key"
	LoggingBucketNameKey        = "bucket_name"
)
