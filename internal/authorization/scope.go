// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

type scopeKind int

const (
	scopeNone scopeKind = iota
	scopeAll
	scopeTenant
	scopeAssigned
)

// Scope is the set of rows a caller may see for a resource type. The zero
// value matches nothing.
type Scope struct {
	kind     scopeKind
	tenantID string
	agentID  string
}

// AllRows matches every row.
func AllRows() Scope {
	return Scope{kind: scopeAll}
}

// NoRows matches nothing.
func NoRows() Scope {
	return Scope{kind: scopeNone}
}

// TenantRows matches rows owned by the tenant profile.
func TenantRows(tenantID string) Scope {
	if tenantID == "" {
		return NoRows()
	}
	return Scope{kind: scopeTenant, tenantID: tenantID}
}

// AssignedRows matches rows owned by the tenant and tied to the agent.
func AssignedRows(tenantID, agentID string) Scope {
	if tenantID == "" || agentID == "" {
		return NoRows()
	}
	return Scope{kind: scopeAssigned, tenantID: tenantID, agentID: agentID}
}

func (s Scope) IsAll() bool {
	return s.kind == scopeAll
}

func (s Scope) IsNone() bool {
	return s.kind == scopeNone
}

// Tenant returns the tenant restriction, empty when unrestricted.
func (s Scope) Tenant() string {
	return s.tenantID
}

// Agent returns the agent restriction, empty when unrestricted.
func (s Scope) Agent() string {
	return s.agentID
}

// TenantRowsOf drops any agent restriction, for resources that are shared
// across a tenant.
func TenantRowsOf(s Scope) Scope {
	if s.kind == scopeAssigned {
		return TenantRows(s.tenantID)
	}
	return s
}
