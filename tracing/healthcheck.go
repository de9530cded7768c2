package tracing

import "strings"

// Target prefixes used by health-check transport libraries.
var healthTargetPrefixes = []string{"tonic_health", "grpc_health"}

// admitsExport decides whether a span or event is forwarded to the export
// layer. Health-check traffic is high-frequency and low-information, so it
// is suppressed at export only; the console layer still receives it.
//
// This is a heuristic, not a precise classifier. Rules are evaluated in
// order, first match wins; substring checks are case-sensitive as written.
func admitsExport(md Metadata) bool {
	for _, prefix := range healthTargetPrefixes {
		if strings.HasPrefix(md.Target, prefix) {
			return false
		}
	}

	if strings.Contains(md.Target, "grpc.health") || strings.Contains(md.Target, "Health") {
		return false
	}

	if strings.Contains(md.Name, "health") || strings.Contains(md.Name, "Health") || strings.Contains(md.Name, "Check") {
		return false
	}

	return true
}
