package drawodds

// Version is the current release of drawodds.
const Version = "0.2.0"
