// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = 10 * time.Minute

// SelectionSessionPrefix is the prefix used for cached booking selection sessions.
const SelectionSessionPrefix = "selection:"

// SelectionSessionTTL is how long an idle selection session survives in Redis.
const SelectionSessionTTL = 30 * time.Minute
