package actor

// Capability is a named permission a role may hold, gating one or more
// concrete actions.
type Capability string

// Capabilities declared for cargo lifecycle and assignment negotiation.
const (
	// CapTransitionCargo allows driving any edge of the cargo lifecycle table.
	CapTransitionCargo Capability = "transition_cargo"

	// CapManageAssignments allows proposing and cancelling assignments.
	CapManageAssignments Capability = "manage_assignments"

	// CapAcceptCargo allows a driver to accept a cargo proposed to them.
	CapAcceptCargo Capability = "accept_cargo"

	// CapAdvanceOwnDelivery allows the pickup -> transit -> deliver edges, on
	// cargo the driver carries only.
	CapAdvanceOwnDelivery Capability = "advance_own_delivery"

	// CapCancelOwnCargo allows a client to cancel their cargo while it has not
	// entered physical transit.
	CapCancelOwnCargo Capability = "cancel_own_cargo"

	// CapCallClient allows calling the cargo's client.
	CapCallClient Capability = "call_client"

	// CapCallDriver allows calling the bound driver.
	CapCallDriver Capability = "call_driver"

	// CapDownloadReceipt allows downloading the delivery receipt.
	CapDownloadReceipt Capability = "download_receipt"

	// CapUploadProof allows uploading proof-of-delivery documents.
	CapUploadProof Capability = "upload_proof"

	// CapReportIssue allows raising an issue against the cargo.
	CapReportIssue Capability = "report_issue"

	// CapTrackOwnCargo allows following the carrier's live position.
	CapTrackOwnCargo Capability = "track_own_cargo"
)

// CapabilitySet is the set of capabilities a role holds.
type CapabilitySet map[Capability]struct{}

// Has reports whether the set contains the capability.
func (s CapabilitySet) Has(c Capability) bool {
	_, ok := s[c]
	return ok
}

// CapabilitiesFor returns the static capability set for a role. It is pure
// and total: an unknown role yields the empty set, never an error.
func CapabilitiesFor(role Role) CapabilitySet {
	switch role {
	case RoleAdmin:
		return newCapabilitySet(
			CapTransitionCargo,
			CapManageAssignments,
			CapCallClient,
			CapCallDriver,
			CapDownloadReceipt,
			CapUploadProof,
			CapReportIssue,
		)
	case RoleDriver:
		return newCapabilitySet(
			CapAcceptCargo,
			CapAdvanceOwnDelivery,
			CapCallClient,
		)
	case RoleClient:
		return newCapabilitySet(
			CapCancelOwnCargo,
			CapCallDriver,
			CapDownloadReceipt,
			CapTrackOwnCargo,
		)
	default:
		return CapabilitySet{}
	}
}

func newCapabilitySet(caps ...Capability) CapabilitySet {
	set := make(CapabilitySet, len(caps))
	for _, c := range caps {
		set[c] = struct{}{}
	}
	return set
}
