package domain

// ProbeResult is an immutable snapshot of the environment taken right
// before a lesson step runs. It is produced fresh on every guardrail
// check and never cached, because repository state can change between
// menu actions.
type ProbeResult struct {
	ToolInstalled    bool
	ToolVersion      string
	InsideRepository bool
	RemoteConfigured bool
	RemoteName       string
	Branch           string
}
