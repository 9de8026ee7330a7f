package errors

// ErrorCode represents a specific error code in the system.
type ErrorCode string

const (
	// GeneralInternalServerError represents a generic internal server error.
	GeneralInternalServerError ErrorCode = "general_internal_server_error"
	// GeneralBadRequestError represents a generic bad request error.
	GeneralBadRequestError ErrorCode = "general_bad_request_error"
	// GeneralNotFoundError represents a generic not found error.
	GeneralNotFoundError ErrorCode = "general_not_found_error"
	// GeneralRepositoryError represents a generic repository error.
	GeneralRepositoryError ErrorCode = "general_repository_error"

	// FeedConfigError represents a missing or placeholder upstream credential.
	FeedConfigError ErrorCode = "feed_config_error"
	// FeedConnectionError represents a socket level failure on the upstream feed.
	FeedConnectionError ErrorCode = "feed_connection_error"
	// FeedMaxReconnectError represents an exhausted reconnect budget.
	FeedMaxReconnectError ErrorCode = "feed_max_reconnect_error"
	// FeedMalformedMessageError represents an unparseable upstream message.
	FeedMalformedMessageError ErrorCode = "feed_malformed_message_error"

	// UnknownPairError represents a pair that is not part of the symbol table.
	UnknownPairError ErrorCode = "unknown_pair_error"

	// KafkaPublishError represents a failure writing to a kafka topic.
	KafkaPublishError ErrorCode = "kafka_publish_error"

	// RedisConfigError represents an error when the Redis configuration is invalid or nil.
	RedisConfigError ErrorCode = "redis_config_error"
	// RedisConnectionError represents an error when connecting to Redis.
	RedisConnectionError ErrorCode = "redis_connection_error"
	// RedisDisconnectionError represents an error when disconnecting from Redis.
	RedisDisconnectionError ErrorCode = "redis_disconnection_error"
	// RedisPingError represents an error when pinging Redis.
	RedisPingError ErrorCode = "redis_pinging_error"
	// RedisHGetAllError represents an error when reading a whole hash in Redis.
	RedisHGetAllError ErrorCode = "redis_hgetall_error"
	// RedisHSetError represents an error when setting fields in a hash in Redis.
	RedisHSetError ErrorCode = "redis_hset_error"
	// RedisHDelError represents an error when deleting fields from a hash in Redis.
	RedisHDelError ErrorCode = "redis_hdel_error"
	// RedisExpireError represents an error when setting a ttl on a key in Redis.
	RedisExpireError ErrorCode = "redis_expire_error"
)
