package pokelance

// Version is the client release version, reported in the User-Agent.
const Version = "0.1.0"
