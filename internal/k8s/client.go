package k8s

import (
	"sort"

	"k8s.io/client-go/tools/clientcmd"
	clientcmdapi "k8s.io/client-go/tools/clientcmd/api"
)

// loadKubeconfig merges kubeconfig files the way kubectl does: an explicit
// path wins, then $KUBECONFIG, then ~/.kube/config.
func loadKubeconfig(kubeconfigPath string) (*clientcmdapi.Config, error) {
	rules := clientcmd.NewDefaultClientConfigLoadingRules()
	if kubeconfigPath != "" {
		rules.ExplicitPath = kubeconfigPath
	}
	return rules.Load()
}

// GetCurrentContext returns the current kubectl context
func GetCurrentContext(kubeconfigPath string) (string, error) {
	config, err := loadKubeconfig(kubeconfigPath)
	if err != nil {
		return "", err
	}

	if config.CurrentContext == "" {
		return "", ErrNoCurrentContext
	}

	return config.CurrentContext, nil
}

// GetContexts returns all available contexts, sorted
func GetContexts(kubeconfigPath string) ([]string, error) {
	config, err := loadKubeconfig(kubeconfigPath)
	if err != nil {
		return nil, err
	}

	contexts := make([]string, 0, len(config.Contexts))
	for name := range config.Contexts {
		contexts = append(contexts, name)
	}
	sort.Strings(contexts)

	return contexts, nil
}
