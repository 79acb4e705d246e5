// Package core contains app-wide contracts and state orchestration.
//
// Allowed here:
// - model routing, message contracts and the key registry
// - shared state machines used across screens (for example the list picker)
// - the provider result contract handed from modals back to the dashboard
//
// Not allowed here:
// - concrete screen/modal rendering implementations
// - filesystem access; provider lookups go through ProviderCatalog
package core
