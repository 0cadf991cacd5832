package validation

// MaxBodySize caps request bodies and so bounds the size of a bulk submission.
const MaxBodySize = 128 * 1024
