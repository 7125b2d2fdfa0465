package repo

import (
	"context"
	"time"

	"github.com/CharansaiParvathala/saibalaji-project-pulse-23953396-sub000/internal/storage"
	"github.com/CharansaiParvathala/saibalaji-project-pulse-23953396-sub000/internal/types"
)

// Collection name suffixes. The full storage key is "<namespace>-<name>";
// the namespace comes from configuration so tests and parallel deployments
// stay isolated.
const (
	UsersCollection           = "users"
	ProjectsCollection        = "projects"
	VehiclesCollection        = "vehicles"
	DriversCollection         = "drivers"
	ProgressEntriesCollection = "progress-entries"
	PaymentRequestsCollection = "payment-requests"
	NotificationsCollection   = "notifications"
)

// CollectionNames lists every collection in a fixed order, for export
// and the destructive clear-database operation.
var CollectionNames = []string{
	UsersCollection,
	ProjectsCollection,
	VehiclesCollection,
	DriversCollection,
	ProgressEntriesCollection,
	PaymentRequestsCollection,
	NotificationsCollection,
}

// CollectionKey returns the storage key for a collection name under a
// namespace, e.g. CollectionKey("saibalaji", "users") = "saibalaji-users".
func CollectionKey(namespace, name string) string {
	return namespace + "-" + name
}

// Repositories bundles the typed repositories over one store + namespace.
// Each collection is exclusively owned by its repository. Cross-entity
// references (projectId, paymentRequests[], relatedId) are soft: no
// referential checks, no cascading updates.
type Repositories struct {
	Users    *Collection[types.User]
	Projects *Collection[types.Project]
	Vehicles *Collection[types.Vehicle]
	Drivers  *Collection[types.Driver]
	Progress *ProgressEntries
	Payments *PaymentRequests
	Notify   *Notifications

	store     storage.Store
	namespace string
}

// New wires the repositories over a storage backend. namespace prefixes
// every collection key.
func New(store storage.Store, namespace string) *Repositories {
	locks := newLockTable()
	key := func(name string) string { return CollectionKey(namespace, name) }

	notify := &Notifications{
		col: newCollection[types.Notification](store, locks, key(NotificationsCollection)),
	}
	r := &Repositories{
		Users:     newCollection[types.User](store, locks, key(UsersCollection)),
		Projects:  newCollection[types.Project](store, locks, key(ProjectsCollection)),
		Vehicles:  newCollection[types.Vehicle](store, locks, key(VehiclesCollection)),
		Drivers:   newCollection[types.Driver](store, locks, key(DriversCollection)),
		Notify:    notify,
		store:     store,
		namespace: namespace,
	}
	r.Progress = &ProgressEntries{
		col: newCollection[types.ProgressEntry](store, locks, key(ProgressEntriesCollection)),
	}
	r.Payments = &PaymentRequests{
		col:    newCollection[types.PaymentRequest](store, locks, key(PaymentRequestsCollection)),
		notify: notify,
		now:    time.Now,
	}
	return r
}

// Namespace returns the configured key prefix.
func (r *Repositories) Namespace() string { return r.namespace }

// ClearAll deletes every collection under the namespace. This is the
// destructive administrative wipe; there is no undo.
func (r *Repositories) ClearAll(ctx context.Context) error {
	for _, name := range CollectionNames {
		if err := r.store.Delete(ctx, CollectionKey(r.namespace, name)); err != nil {
			return err
		}
	}
	return nil
}
