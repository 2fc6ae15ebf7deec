package pagination

// LimitDefault is the default number of items if not specified
const LimitDefault = 20

// LimitMax is the maximum number of items a single request may ask for
const LimitMax = 1_000
