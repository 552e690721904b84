package application

const (
	// AppName is the application name used for identification and as the CLI entrypoint
	AppName = "ghdl"

	// Version is the current release version
	Version = "0.1.0"
)
