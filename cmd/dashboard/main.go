/*
Copyright 2025 Mirantis IT.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	_ "k8s.io/client-go/plugin/pkg/client/auth"

	"github.com/Mirantis/pelagia-dashboard/codeversion"
	"github.com/Mirantis/pelagia-dashboard/pkg/backend"
	lcmcommon "github.com/Mirantis/pelagia-dashboard/pkg/common"
	dashconfig "github.com/Mirantis/pelagia-dashboard/pkg/config"
	"github.com/Mirantis/pelagia-dashboard/pkg/connector"
	"github.com/Mirantis/pelagia-dashboard/pkg/multisite"
	"github.com/Mirantis/pelagia-dashboard/pkg/server"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type rootOptions struct {
	configFile string
	configMap  string
	namespace  string
}

func main() {
	log := lcmcommon.InitLogger(true)
	if err := newRootCmd(log).Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func newRootCmd(log zerolog.Logger) *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           lcmcommon.DashboardAppName,
		Short:         "Ceph dashboard shell, navigation notifications and multisite replication client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configFile, "config-file", "", "path to yaml file with dashboard parameters")
	root.PersistentFlags().StringVar(&opts.configMap, "configmap", "", "name of configmap with dashboard parameters, '"+dashconfig.DashboardConfigMapName+"' if empty")
	root.PersistentFlags().StringVar(&opts.namespace, "namespace", "", "namespace of configmap with dashboard parameters, configmap is not used if empty")

	root.AddCommand(newServeCmd(log, opts))
	root.AddCommand(newMultisiteCmd(log, opts))
	root.AddCommand(newVersionCmd())
	return root
}

// loadConfig prefers file, then configmap and falls back to environment
func loadConfig(ctx context.Context, log zerolog.Logger, opts *rootOptions) (dashconfig.DashboardConfig, error) {
	if opts.configFile != "" {
		return dashconfig.LoadFromFile(log, opts.configFile)
	}
	if opts.namespace != "" {
		c, err := connector.GetConnector()
		if err != nil {
			return dashconfig.DashboardConfig{}, err
		}
		return dashconfig.LoadFromConfigMap(ctx, log, c.Kubeclientset, opts.namespace, opts.configMap)
	}
	return dashconfig.LoadFromEnv(log, os.Environ()), nil
}

func newServeCmd(log zerolog.Logger, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve branded dashboard shell, navigation and multisite ui-api and metrics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			config, err := loadConfig(ctx, log, opts)
			if err != nil {
				return err
			}
			serverLog := lcmcommon.ComponentLogger(log, "server", config.LogLevel)
			serverLog.Info().Msg(codeversion.GetCodeVersion("Dashboard"))
			serverLog.Info().Msg(codeversion.GetGoRuntimeVersion())
			s, err := server.New(log, config)
			if err != nil {
				return errors.Wrap(err, "failed to initialize dashboard server")
			}
			return s.Run(ctx)
		},
	}
}

type multisiteOptions struct {
	realm              string
	zonegroup          string
	zonegroupEndpoints string
	zone               string
	zoneEndpoints      string
	accessKey          string
	secretKey          string
	username           string
	cluster            string
	daemon             string
}

func multisiteClient(ctx context.Context, log zerolog.Logger, opts *rootOptions, daemon string) (*multisite.Client, dashconfig.DashboardConfig, error) {
	config, err := loadConfig(ctx, log, opts)
	if err != nil {
		return nil, config, err
	}
	clientLog := lcmcommon.ComponentLogger(log, "multisite", config.LogLevel)
	backendClient := backend.NewClient(config.Backend.URL, config.Backend.Token, config.Backend.Insecure)
	// one-shot commands have no metrics endpoint
	client := multisite.NewClient(clientLog, backendClient, nil, nil)
	if daemon != "" {
		if _, err := client.Daemons().Select(ctx, daemon); err != nil {
			return nil, config, err
		}
	}
	return client, config, nil
}

func printResponse(out io.Writer, resp jsoniter.RawMessage) error {
	if len(resp) == 0 {
		return nil
	}
	var obj interface{}
	if err := json.Unmarshal(resp, &obj); err != nil {
		_, err = fmt.Fprintln(out, string(resp))
		return err
	}
	pretty, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(pretty))
	return err
}

func newMultisiteCmd(log zerolog.Logger, opts *rootOptions) *cobra.Command {
	ms := &cobra.Command{Use: "multisite", Short: "RGW multisite replication commands"}
	msOpts := &multisiteOptions{}

	ms.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show multisite configuration status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, _, err := multisiteClient(cmd.Context(), log, opts, "")
			if err != nil {
				return err
			}
			resp, err := client.Status(cmd.Context())
			if err != nil {
				return err
			}
			return printResponse(cmd.OutOrStdout(), resp)
		},
	})

	ms.AddCommand(&cobra.Command{
		Use:   "sync-status",
		Short: "Show multisite sync status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, _, err := multisiteClient(cmd.Context(), log, opts, "")
			if err != nil {
				return err
			}
			resp, err := client.GetSyncStatus(cmd.Context())
			if err != nil {
				return err
			}
			return printResponse(cmd.OutOrStdout(), resp)
		},
	})

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrate single site object storage to multisite master zone",
		Long: "Migrate single site object storage to multisite master zone. When realm is not " +
			"specified, realm, zonegroup, endpoints and system keys are taken from rook objects of the zone.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if msOpts.zone == "" {
				return errors.New("argument '--zone' is required, but not set")
			}
			client, config, err := multisiteClient(cmd.Context(), log, opts, msOpts.daemon)
			if err != nil {
				return err
			}
			topology := &multisite.Topology{
				Realm:     multisite.Realm{Name: msOpts.realm},
				Zonegroup: multisite.Zonegroup{Name: msOpts.zonegroup, Endpoints: msOpts.zonegroupEndpoints},
				Zone: multisite.Zone{
					Name:      msOpts.zone,
					Endpoints: msOpts.zoneEndpoints,
					SystemKey: multisite.SystemKey{AccessKey: msOpts.accessKey, SecretKey: msOpts.secretKey},
				},
			}
			if msOpts.realm == "" {
				c, err := connector.GetConnector()
				if err != nil {
					return err
				}
				topology, err = multisite.TopologyFromRook(cmd.Context(), c.Rookclientset, c.Kubeclientset, config.RookNamespace, msOpts.zone)
				if err != nil {
					return err
				}
			}
			resp, err := client.Migrate(cmd.Context(), topology.Realm, topology.Zonegroup, topology.Zone)
			if err != nil {
				return err
			}
			return printResponse(cmd.OutOrStdout(), resp)
		},
	}
	migrateCmd.Flags().StringVar(&msOpts.realm, "realm", "", "realm name, rook objects are used if empty")
	migrateCmd.Flags().StringVar(&msOpts.zonegroup, "zonegroup", "", "zonegroup name")
	migrateCmd.Flags().StringVar(&msOpts.zonegroupEndpoints, "zonegroup-endpoints", "", "comma separated zonegroup endpoints")
	migrateCmd.Flags().StringVar(&msOpts.zone, "zone", "", "zone name")
	migrateCmd.Flags().StringVar(&msOpts.zoneEndpoints, "zone-endpoints", "", "comma separated zone endpoints")
	migrateCmd.Flags().StringVar(&msOpts.accessKey, "access-key", "", "zone system user access key")
	migrateCmd.Flags().StringVar(&msOpts.secretKey, "secret-key", "", "zone system user secret key")
	migrateCmd.Flags().StringVar(&msOpts.daemon, "daemon", "", "rgw daemon id, default daemon is used if empty")
	ms.AddCommand(migrateCmd)

	setupCmd := &cobra.Command{
		Use:   "setup-replication",
		Short: "Set up multisite replication",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, _, err := multisiteClient(cmd.Context(), log, opts, "")
			if err != nil {
				return err
			}
			resp, err := client.SetUpMultisiteReplication(cmd.Context(), msOpts.realm, msOpts.zonegroup, msOpts.zonegroupEndpoints,
				msOpts.zone, msOpts.zoneEndpoints, msOpts.username, msOpts.cluster)
			if err != nil {
				return err
			}
			return printResponse(cmd.OutOrStdout(), resp)
		},
	}
	setupCmd.Flags().StringVar(&msOpts.realm, "realm", "", "realm name")
	setupCmd.Flags().StringVar(&msOpts.zonegroup, "zonegroup", "", "zonegroup name")
	setupCmd.Flags().StringVar(&msOpts.zonegroupEndpoints, "zonegroup-endpoints", "", "comma separated zonegroup endpoints")
	setupCmd.Flags().StringVar(&msOpts.zone, "zone", "", "zone name")
	setupCmd.Flags().StringVar(&msOpts.zoneEndpoints, "zone-endpoints", "", "comma separated zone endpoints")
	setupCmd.Flags().StringVar(&msOpts.username, "username", "", "rgw system user name")
	setupCmd.Flags().StringVar(&msOpts.cluster, "cluster", "", "fsid of cluster to replicate to, optional")
	ms.AddCommand(setupCmd)

	return ms
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show binary version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), codeversion.GetCodeVersion("Dashboard"))
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), codeversion.GetGoRuntimeVersion())
			return nil
		},
	}
}
