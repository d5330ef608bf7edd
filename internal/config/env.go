package config

// Env keys. Tool-specific keys use the KDBG_ prefix.
const (
	envConfig    = "KDBG_CONFIG"
	envKubectl   = "KDBG_KUBECTL"
	envContext   = "KDBG_CONTEXT"
	envNamespace = "KDBG_NAMESPACE"
	envLogLevel  = "KDBG_LOG_LEVEL"
	envLogFormat = "KDBG_LOG_FORMAT"
	envNoColor   = "KDBG_NO_COLOR"
)

// Standard keys honored as well. KUBECONFIG is left to kubectl and the
// kubeconfig loading rules, which both accept a list of files.
const (
	envNoColorFallback = "NO_COLOR"
)
