// Command alpacalert scans a Kubernetes namespace and prints its
// health as an indented tree of passing/failing/unknown checks.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	"k8s.io/client-go/tools/clientcmd"
	"k8s.io/client-go/util/homedir"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/lilatomic/alpacalert/pkg/instrumentor"
	"github.com/lilatomic/alpacalert/pkg/k8sfacade"
	"github.com/lilatomic/alpacalert/pkg/k8sinstr"
	"github.com/lilatomic/alpacalert/pkg/visualiser"
)

func main() {
	var kubeconfig *string
	if home := homedir.HomeDir(); home != "" {
		kubeconfig = flag.String("kubeconfig", filepath.Join(home, ".kube", "config"), "(optional) absolute path to the kubeconfig file")
	} else {
		kubeconfig = flag.String("kubeconfig", "", "absolute path to the kubeconfig file")
	}
	var (
		apiserverURL    = flag.String("apiserver", "", "URL to the Kubernetes API server.")
		namespace       = flag.String("namespace", "default", "Namespace to scan.")
		clusterName     = flag.String("cluster-name", "cluster", "Name reported for the scanned cluster's root node.")
		showOnlyFailing = flag.Bool("show-only-failing", false, "Only print nodes that are not passing.")
	)
	flag.Parse()

	logger := log.NewJSONLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)
	logger = log.With(logger, "caller", log.DefaultCaller)

	cfg, err := clientcmd.BuildConfigFromFlags(*apiserverURL, *kubeconfig)
	if err != nil {
		level.Error(logger).Log("msg", "couldn't build kubeconfig", "err", err)
		os.Exit(1)
	}

	c, err := client.New(cfg, client.Options{Scheme: clientgoscheme.Scheme})
	if err != nil {
		level.Error(logger).Log("msg", "couldn't create kubernetes client", "err", err)
		os.Exit(1)
	}

	zapLogger, err := zap.NewProduction()
	if err != nil {
		level.Error(logger).Log("msg", "couldn't create zap logger", "err", err)
		os.Exit(1)
	}
	facadeLogger := zapr.NewLogger(zapLogger)

	facade := k8sfacade.New(c)
	registry := instrumentor.NewRegistry()
	k8sinstr.Install(registry, facade)

	scanners, err := registry.Instrument(context.Background(), k8sinstr.KindCluster, k8sinstr.ClusterParams{
		Name:      *clusterName,
		Namespace: *namespace,
	})
	if err != nil {
		level.Error(logger).Log("msg", "couldn't instrument cluster", "err", err)
		os.Exit(1)
	}

	v := consoleVisualiser(facadeLogger, *showOnlyFailing)
	for _, scanner := range scanners {
		fmt.Print(v.Visualise(scanner))
	}
}

func consoleVisualiser(logger logr.Logger, onlyFailing bool) *visualiser.Console {
	show := visualiser.ShowAll
	if onlyFailing {
		show = visualiser.ShowOnlyFailing
	}
	return &visualiser.Console{Symbols: visualiser.DefaultSymbols(), Show: show, Logger: logger}
}
