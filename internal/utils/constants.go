package utils

// LoggerInitializationFailedMessageFormat reports a logger that could not be built.
const LoggerInitializationFailedMessageFormat = "unable to initialize logger: %w"

// ApplicationExecutionFailedMessage prefixes fatal command execution errors.
const ApplicationExecutionFailedMessage = "arbor execution failed"

// GlobalConfigDirectoryName is the directory under the user home holding the global configuration.
const GlobalConfigDirectoryName = ".arbor"

// ConfigFileName is the configuration file name looked up globally and in the working directory.
const ConfigFileName = ".arbor.yaml"
