package detect

// Escalation decision thresholds. The ordering of the rules below is a
// cost-control policy: the external analyzer is only paid for when
// pattern evidence is too weak to stand alone.
const (
	wordpressHighConfidenceFloor = 5
	largeDocumentBytes           = 500 * 1024
	largeDocumentHighFloor       = 3
	sufficientHighConfidence     = 5
	sufficientTotalFindings      = 3
)

// Decision is the escalation policy's verdict for one analysis run.
type Decision struct {
	InvokeAI bool   `json:"invoke_ai"`
	Reason   string `json:"reason"`
}

// ShouldEscalate decides whether the AI analyzer should run, from the
// pattern findings alone. It is a pure function: same inputs, same
// verdict. Rules are evaluated in order and the first match wins.
func ShouldEscalate(findings []Finding, platform Platform, documentSizeBytes int) Decision {
	high := 0
	for _, f := range findings {
		if f.Confidence == ConfidenceHigh {
			high++
		}
	}

	if platform == PlatformWordPress && high < wordpressHighConfidenceFloor {
		return Decision{InvokeAI: true, Reason: "wordpress with sparse high-confidence coverage; plugin ecosystems under-detect on patterns alone"}
	}
	if platform == PlatformWordPress && len(findings) == 0 {
		return Decision{InvokeAI: true, Reason: "wordpress with no pattern findings"}
	}
	if platform.Recognized() && platform != PlatformWordPress {
		return Decision{InvokeAI: true, Reason: "non-WordPress platform; static catalog is shallow for " + string(platform)}
	}
	if documentSizeBytes > largeDocumentBytes && high < largeDocumentHighFloor {
		return Decision{InvokeAI: true, Reason: "large document with weak high-confidence signal"}
	}
	if high >= sufficientHighConfidence {
		return Decision{InvokeAI: false, Reason: "sufficient high-confidence pattern coverage"}
	}
	if len(findings) >= sufficientTotalFindings {
		return Decision{InvokeAI: false, Reason: "sufficient total pattern findings"}
	}
	return Decision{InvokeAI: true, Reason: "weak pattern signal; defaulting to full analysis"}
}
