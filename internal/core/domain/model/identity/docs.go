// Package identity models the authenticated caller as seen by the ordering core.
//
// Role membership is resolved once per request by the identity provider and attached to
// the Principal as a RoleSet value. Domain code never looks groups up on its own.
//
// Group slugs used in URLs resolve through a closed table (GroupFromSlug), so arbitrary
// role names can never be introduced from the outside.
package identity
