package cli

import (
	"context"
	"fmt"
	"io"
)

// Store is the capability the menu needs from the remote set store.
// *client.Client satisfies it; tests substitute a fake.
type Store interface {
	Exists(ctx context.Context, key string) (bool, error)
	AddMembers(ctx context.Context, key string, members []string) (int, error)
	RemoveMember(ctx context.Context, key, member string) (bool, error)
	Members(ctx context.Context, key string) ([]string, error)
	Cardinality(ctx context.Context, key string) (int, error)
	DeleteKey(ctx context.Context, key string) (bool, error)
	FlushAll(ctx context.Context) error
}

// Menu drives the interactive session: print the fixed menu, read a
// validated selection, run one operation against the store, repeat.
// Store errors are not recovered here; they propagate to the caller
// and end the session.
type Menu struct {
	store Store
	p     *Prompter
	out   io.Writer
}

func NewMenu(store Store, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		store: store,
		p:     NewPrompter(in, out),
		out:   out,
	}
}

// Run executes the top-level loop until the operator selects exit or a
// store call fails.
func (m *Menu) Run(ctx context.Context) error {
	for {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "Type in a number and press enter to execute the menu option.")
		fmt.Fprintln(m.out, "1. Query for set members")
		fmt.Fprintln(m.out, "2. Add a new set")
		fmt.Fprintln(m.out, "3. Update members of a set")
		fmt.Fprintln(m.out, "4. Delete a set")
		fmt.Fprintln(m.out, "5. Delete all data from the database")
		fmt.Fprintln(m.out, "6. Exit the program")

		selection, err := m.p.ReadBoundedInt("Selection: ", 1, 6)
		if err != nil {
			return err
		}

		switch selection {
		case 1:
			err = m.querySet(ctx)
		case 2:
			err = m.createSet(ctx)
		case 3:
			err = m.updateSet(ctx)
		case 4:
			err = m.deleteSet(ctx)
		case 5:
			err = m.deleteAll(ctx)
		case 6:
			fmt.Fprintln(m.out, "Exiting program...")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// querySet prints every member of one set and its cardinality.
func (m *Menu) querySet(ctx context.Context) error {
	key, err := m.p.ReadString("Enter the key you wish to query: ")
	if err != nil {
		return err
	}
	if key == "" {
		fmt.Fprintln(m.out, "Key cannot be empty.")
		return nil
	}

	exists, err := m.store.Exists(ctx, key)
	if err != nil {
		return err
	}
	if !exists {
		fmt.Fprintf(m.out, "Key '%s' does not exist.\n", key)
		return nil
	}

	members, err := m.store.Members(ctx, key)
	if err != nil {
		return err
	}

	fmt.Fprintf(m.out, "Members of set '%s':\n", key)
	if len(members) == 0 {
		fmt.Fprintln(m.out, "(No members found)")
	} else {
		for _, member := range members {
			fmt.Fprintf(m.out, "- %s\n", member)
		}
	}

	card, err := m.store.Cardinality(ctx, key)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "The cardinality of the set is: %d\n", card)
	return nil
}

// createSet collects a full batch of members and adds them in one call.
// A blank member anywhere in the batch cancels the whole operation
// before anything is sent to the store.
func (m *Menu) createSet(ctx context.Context) error {
	key, err := m.p.ReadString("Enter the key you wish to add: ")
	if err != nil {
		return err
	}
	if key == "" {
		fmt.Fprintln(m.out, "Key cannot be empty.")
		return nil
	}

	count, err := m.p.ReadBoundedInt("Enter how many members will this set have: ", 1, NoMax)
	if err != nil {
		return err
	}

	members := make([]string, 0, count)
	for i := 0; i < count; i++ {
		member, err := m.p.ReadString("Enter the next member value: ")
		if err != nil {
			return err
		}
		if member == "" {
			fmt.Fprintln(m.out, "Member cannot be empty. Try again.")
			return nil
		}
		members = append(members, member)
	}

	added, err := m.store.AddMembers(ctx, key, members)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Set '%s' updated. Members added this operation: %d\n", key, added)

	card, err := m.store.Cardinality(ctx, key)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "The cardinality of the set is now: %d\n", card)
	return nil
}

// updateSet runs the nested add/remove/clear menu against one existing
// set until the operator exits it.
func (m *Menu) updateSet(ctx context.Context) error {
	key, err := m.p.ReadString("Enter the key of the set you wish to update: ")
	if err != nil {
		return err
	}
	if key == "" {
		fmt.Fprintln(m.out, "Key cannot be empty.")
		return nil
	}

	exists, err := m.store.Exists(ctx, key)
	if err != nil {
		return err
	}
	if !exists {
		fmt.Fprintf(m.out, "Key '%s' does not exist.\n", key)
		return nil
	}

	for {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "Please type in a number and press enter to execute the menu option")
		fmt.Fprintln(m.out, "1. Add new member")
		fmt.Fprintln(m.out, "2. Remove member")
		fmt.Fprintln(m.out, "3. Remove all members")
		fmt.Fprintln(m.out, "4. Exit Update Menu")

		choice, err := m.p.ReadBoundedInt("Selection: ", 1, 4)
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			if err := m.addMember(ctx, key); err != nil {
				return err
			}
		case 2:
			if err := m.removeMember(ctx, key); err != nil {
				return err
			}
		case 3:
			if err := m.removeAllMembers(ctx, key); err != nil {
				return err
			}
		case 4:
			fmt.Fprintln(m.out, "Exiting Update Menu...")
			return nil
		}
	}
}

func (m *Menu) addMember(ctx context.Context, key string) error {
	member, err := m.p.ReadString("Enter the member value to add: ")
	if err != nil {
		return err
	}
	if member == "" {
		fmt.Fprintln(m.out, "Member cannot be empty.")
		return nil
	}

	added, err := m.store.AddMembers(ctx, key, []string{member})
	if err != nil {
		return err
	}
	if added == 1 {
		fmt.Fprintf(m.out, "Added member '%s' to set '%s'.\n", member, key)
	} else {
		fmt.Fprintf(m.out, "Member '%s' already existed in set '%s'.\n", member, key)
	}
	return m.printCardinality(ctx, key)
}

func (m *Menu) removeMember(ctx context.Context, key string) error {
	member, err := m.p.ReadString("Enter the member value to remove: ")
	if err != nil {
		return err
	}
	if member == "" {
		fmt.Fprintln(m.out, "Member cannot be empty.")
		return nil
	}

	removed, err := m.store.RemoveMember(ctx, key, member)
	if err != nil {
		return err
	}
	if removed {
		fmt.Fprintf(m.out, "Removed member '%s' from set '%s'.\n", member, key)
	} else {
		fmt.Fprintf(m.out, "Member '%s' was not found in set '%s'.\n", member, key)
	}
	return m.printCardinality(ctx, key)
}

// removeAllMembers iterates a point-in-time snapshot of the membership
// and removes one member per call, reporting each removal. Concurrent
// external mutation of the same key can leave the final cardinality
// non-zero; that race is accepted, not guarded.
func (m *Menu) removeAllMembers(ctx context.Context, key string) error {
	fmt.Fprintln(m.out, "Removing all set members...")
	members, err := m.store.Members(ctx, key)
	if err != nil {
		return err
	}
	if len(members) == 0 {
		fmt.Fprintln(m.out, "Set already has no members.")
	} else {
		for _, member := range members {
			fmt.Fprintf(m.out, "Removing Member: %s...\n", member)
			if _, err := m.store.RemoveMember(ctx, key, member); err != nil {
				return err
			}
		}
	}
	return m.printCardinality(ctx, key)
}

func (m *Menu) printCardinality(ctx context.Context, key string) error {
	card, err := m.store.Cardinality(ctx, key)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "The cardinality of the set is now: %d\n", card)
	return nil
}

// deleteSet removes one key entirely.
func (m *Menu) deleteSet(ctx context.Context) error {
	key, err := m.p.ReadString("Enter the key of the set you wish to delete: ")
	if err != nil {
		return err
	}
	if key == "" {
		fmt.Fprintln(m.out, "Key cannot be empty.")
		return nil
	}

	deleted, err := m.store.DeleteKey(ctx, key)
	if err != nil {
		return err
	}
	if deleted {
		fmt.Fprintf(m.out, "Set '%s' deleted successfully.\n", key)
	} else {
		fmt.Fprintf(m.out, "Key '%s' was not found.\n", key)
	}
	return nil
}

// deleteAll flushes the whole store after an explicit confirmation.
// Anything other than "y" cancels without a store call.
func (m *Menu) deleteAll(ctx context.Context) error {
	confirmed, err := m.p.ReadConfirm("Are you sure you want to delete ALL data from the database? (y/n): ")
	if err != nil {
		return err
	}
	if !confirmed {
		fmt.Fprintln(m.out, "Delete all canceled.")
		return nil
	}

	if err := m.store.FlushAll(ctx); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "All data deleted from the database.")
	return nil
}
