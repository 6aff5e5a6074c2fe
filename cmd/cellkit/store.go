package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/cellkit-dev/cellkit/pkg/storage"
)

// storeFlags select which backing store a subcommand operates on.
type storeFlags struct {
	dir    string
	badger string
}

func (f *storeFlags) open() (storage.Store, func() error, error) {
	switch {
	case f.dir != "" && f.badger != "":
		return nil, nil, errors.New("--dir and --badger are mutually exclusive")
	case f.dir != "":
		s, err := storage.NewDir(f.dir)
		if err != nil {
			return nil, nil, err
		}
		return s, func() error { return nil }, nil
	case f.badger != "":
		s, err := storage.OpenBadger(storage.BadgerConfig{Path: f.badger, SyncWrites: true})
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	default:
		return nil, nil, errors.New("one of --dir or --badger is required")
	}
}

func storeCmd() *cobra.Command {
	var flags storeFlags

	cmd := &cobra.Command{
		Use:   "store",
		Short: "Read and write a persistence store",
	}
	cmd.PersistentFlags().StringVar(&flags.dir, "dir", "", "path to a directory store")
	cmd.PersistentFlags().StringVar(&flags.badger, "badger", "", "path to a Badger store")

	cmd.AddCommand(
		storeGetCmd(&flags),
		storeSetCmd(&flags),
		storeListCmd(&flags),
		storeDeleteCmd(&flags),
	)
	return cmd
}

func storeGetCmd(flags *storeFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "get KEY",
		Short: "Print the stored value for a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeStore, err := flags.open()
			if err != nil {
				return err
			}
			defer closeStore()

			data, ok, err := store.Read(args[0])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("key %q not found", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}

func storeSetCmd(flags *storeFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Store a value under a key",
		Long: `Store a value under a key.

VALUE is stored verbatim. Persistent cells serialize values as JSON, so
pass JSON when the key backs a cell (e.g. '"dark"' for a string cell).`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeStore, err := flags.open()
			if err != nil {
				return err
			}
			defer closeStore()

			return store.Write(args[0], []byte(args[1]))
		},
	}
}

func storeListCmd(flags *storeFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeStore, err := flags.open()
			if err != nil {
				return err
			}
			defer closeStore()

			keys, err := store.Keys()
			if err != nil {
				return err
			}
			sort.Strings(keys)
			for _, key := range keys {
				fmt.Fprintln(cmd.OutOrStdout(), key)
			}
			return nil
		},
	}
}

func storeDeleteCmd(flags *storeFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "delete KEY",
		Short: "Delete a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, closeStore, err := flags.open()
			if err != nil {
				return err
			}
			defer closeStore()

			return store.Delete(args[0])
		},
	}
}
