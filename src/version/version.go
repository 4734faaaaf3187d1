package version

// Version is the current release of docker-volume-backup.
const Version = "0.1.0"
