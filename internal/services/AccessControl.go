package services

import (
	"sort"
	"wxledger/internal/models"
)

// AccessControl answers role questions: the fixed owner, and the set of
// oracles the owner has authorized.
type AccessControl struct {
	owner   models.Identity
	oracles *models.OracleStore
}

func NewAccessControl(owner models.Identity, oracles *models.OracleStore) *AccessControl {
	return &AccessControl{
		owner:   owner,
		oracles: oracles,
	}
}

func (ac *AccessControl) Owner() models.Identity {
	return ac.owner
}

// IsOwner never matches the anonymous identity.
func (ac *AccessControl) IsOwner(sender models.Identity) bool {
	return sender != models.Anonymous && sender == ac.owner
}

func (ac *AccessControl) AuthorizeOracle(sender, oracle models.Identity) error {
	if !ac.IsOwner(sender) {
		return models.ErrUnauthorized
	}
	ac.oracles.Set(oracle, true)
	return nil
}

// RevokeOracle succeeds for oracles that were never authorized.
func (ac *AccessControl) RevokeOracle(sender, oracle models.Identity) error {
	if !ac.IsOwner(sender) {
		return models.ErrUnauthorized
	}
	ac.oracles.Delete(oracle)
	return nil
}

func (ac *AccessControl) IsAuthorizedOracle(oracle models.Identity) bool {
	_, ok := ac.oracles.Get(oracle)
	return ok
}

func (ac *AccessControl) Oracles() []models.Identity {
	data := ac.oracles.GetData()
	result := make([]models.Identity, 0, len(data))
	for id := range data {
		result = append(result, id)
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

func (ac *AccessControl) putOracles(oracles []models.Identity) {
	data := make(map[models.Identity]bool, len(oracles))
	for _, id := range oracles {
		data[id] = true
	}
	ac.oracles.PutData(data)
}
