package constants

// Redis key formats
const (
	// Idempotency guard
	KeyIdempotency = "dispatch:idem:%s:%s" // Format: dispatch:idem:{route}:{idempotency_key}

	// Rate Limiting
	KeyRateLimit = "rate:limit:%s:%s" // Format: rate:limit:{resource}:{ip}
)

// HTTP headers
const (
	HeaderIdempotencyKey = "Idempotency-Key"
	HeaderRateLimit      = "X-RateLimit-Limit"
	HeaderRateRemaining  = "X-RateLimit-Remaining"
	HeaderRateReset      = "X-RateLimit-Reset"
)
