package factory

// TransferOwnership starts a two-step ownership transfer, mirroring
// original_source/.../execute.rs's transfer_ownership. The new owner
// only takes effect once they call AcceptOwnership themselves.
func (f *Factory) TransferOwnership(sender, newOwner string) (*Outcome, error) {
	cfg, err := f.Store.LoadConfig()
	if err != nil {
		return nil, err
	}
	if sender != cfg.Owner {
		return nil, NewUnauthorizedError()
	}
	if err := f.Store.SavePendingOwner(newOwner); err != nil {
		return nil, err
	}
	return newOutcome("transfer_ownership").attr("pending_owner", newOwner), nil
}

// AcceptOwnership completes a pending ownership transfer, mirroring
// original_source/.../execute.rs's accept_ownership.
func (f *Factory) AcceptOwnership(sender string) (*Outcome, error) {
	pending, hasPending, err := f.Store.LoadPendingOwner()
	if err != nil {
		return nil, err
	}
	if !hasPending {
		return nil, NewNoPendingOwnershipError()
	}
	if sender != pending {
		return nil, NewNotPendingOwnerError()
	}

	cfg, err := f.Store.LoadConfig()
	if err != nil {
		return nil, err
	}
	cfg.Owner = pending
	if err := f.Store.SaveConfig(cfg); err != nil {
		return nil, err
	}
	if err := f.Store.RemovePendingOwner(); err != nil {
		return nil, err
	}

	return newOutcome("accept_ownership").attr("new_owner", pending), nil
}
