package common

// SessionKey is the metadata key holding the identity of the logged-in user.
const SessionKey = "mv_user"

// MiB is one mebibyte.
const MiB = 1024 * 1024
