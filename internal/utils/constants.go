package utils

// ConfigFileName is the name of the local and global configuration file.
const ConfigFileName = ".uicrumb.yaml"

// GlobalConfigDirectoryName is the directory under the user home holding the
// global configuration file.
const GlobalConfigDirectoryName = ".uicrumb"

// LoggerInitializationFailedMessageFormat reports a logger construction failure.
const LoggerInitializationFailedMessageFormat = "logger initialization failed: %w"

// ApplicationExecutionFailedMessage reports a fatal command failure.
const ApplicationExecutionFailedMessage = "application execution failed"
