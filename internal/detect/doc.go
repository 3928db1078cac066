// Package detect implements the technology and extension detection
// engine.
//
// Architecture overview:
//
//   - Catalog holds the versioned signature database, loaded once and
//     indexed by (platform, name). It is read-only after load, so any
//     number of concurrent analyses may share it.
//   - IdentifyPlatform classifies a document into exactly one platform
//     tag via generator meta tags and path-marker sniffing.
//   - Match scans a document against a platform's signature subset plus
//     the universal set, deriving confidence from which pattern group
//     matched (paths and headers high, html medium, css medium, js low).
//   - ShouldEscalate is the pure cost-control policy deciding whether
//     pattern coverage is weak enough to justify an AI analyzer call.
//   - Analyzer is the external large-model boundary; responses are
//     validated and coerced, never trusted as-shaped.
//   - Merge joins pattern and AI findings under the fuzzy substring
//     identity rule, enriching duplicates instead of duplicating them.
//   - Engine wires the whole pipeline: a two-state escalation machine
//     where analyzer failure always falls back to pattern-only output,
//     so an audit never fails because detection failed.
//   - Runner fans audits across URLs with a semaphore-bounded worker
//     pool and a global fetch rate limit.
package detect
