// Package synccache keeps a client-side copy of one server resource list.
//
// Mutations are applied optimistically and resolved later: Reconcile
// installs the server's answer, Rollback restores the value the item had
// before the mutation. A poller re-fetches the full list on a fixed
// interval. A refresh never overwrites an item with a mutation in flight;
// the fetched value is held back and applied only if that mutation is
// rolled back.
//
// A Cache belongs to one session. Construct it when the session starts and
// Close it on logout.
package synccache
