package version

// AppVersion is the pyctl release version.
const AppVersion = "0.1.0"
