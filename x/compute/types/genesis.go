package types

// GenesisState defines the compute module's genesis state.
type GenesisState struct {
	Params              Params               `json:"params"`
	Evaluators          []Evaluator          `json:"evaluators"`
	PendingComputations []PendingComputation `json:"pending_computations"`
	NextComputationId   uint64               `json:"next_computation_id"`
}

// DefaultGenesis returns the default compute genesis state.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:            DefaultParams(),
		NextComputationId: 1,
	}
}

// Validate performs basic genesis state validation.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return ErrInvalidParams.Wrap(err.Error())
	}
	if gs.NextComputationId == 0 {
		return ErrInvalidGenesis.Wrap("next computation id must be positive")
	}
	seenEvaluators := make(map[string]struct{}, len(gs.Evaluators))
	for _, ev := range gs.Evaluators {
		if ev.Address == "" {
			return ErrInvalidGenesis.Wrap("evaluator address cannot be empty")
		}
		if _, ok := seenEvaluators[ev.Address]; ok {
			return ErrInvalidGenesis.Wrapf("duplicate evaluator %s", ev.Address)
		}
		seenEvaluators[ev.Address] = struct{}{}
	}
	seenIDs := make(map[uint64]struct{}, len(gs.PendingComputations))
	seenIdentities := make(map[string]struct{}, len(gs.PendingComputations))
	for _, pc := range gs.PendingComputations {
		if pc.Id == 0 {
			return ErrInvalidGenesis.Wrap("pending computation id must be positive")
		}
		if pc.Id >= gs.NextComputationId {
			return ErrInvalidGenesis.Wrapf(
				"pending computation id %d not below next id %d", pc.Id, gs.NextComputationId)
		}
		if _, ok := seenIDs[pc.Id]; ok {
			return ErrInvalidGenesis.Wrapf("duplicate pending computation id %d", pc.Id)
		}
		seenIDs[pc.Id] = struct{}{}
		if pc.Circuit == "" {
			return ErrInvalidGenesis.Wrapf("pending computation %d has empty circuit", pc.Id)
		}
		if len(pc.IdentityHash) == 0 {
			return ErrInvalidGenesis.Wrapf("pending computation %d has empty identity hash", pc.Id)
		}
		idKey := string(pc.IdentityHash)
		if _, ok := seenIdentities[idKey]; ok {
			return ErrInvalidGenesis.Wrapf("duplicate identity hash for computation %d", pc.Id)
		}
		seenIdentities[idKey] = struct{}{}
	}
	return nil
}
