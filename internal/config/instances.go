package config

import (
	"encoding/json"
	"fmt"
	"os"
	"net"
	"path/filepath"
	"strconv"
	"time"
)

// InstanceType identifies the kind of long-running suhoor process.
type InstanceType string

// InstanceServe is a `suhoor serve` API server.
const InstanceServe InstanceType = "serve"

// Instance is a running suhoor process recorded in instances.json.
type Instance struct {
	Type      InstanceType `json:"type"`
	PID       int          `json:"pid"`
	Port      int          `json:"port,omitempty"`
	Host      string       `json:"host,omitempty"`
	StartedAt time.Time    `json:"started_at"`
}

// URL returns the base URL the instance serves on. An empty host means
// localhost.
func (i Instance) URL() string {
	host := i.Host
	if host == "" {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, strconv.Itoa(i.Port))
}

func instancesPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "instances.json"), nil
}

// RegisterInstance records inst, pruning dead entries first.
func RegisterInstance(inst Instance) error {
	path, err := instancesPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	instances, _ := readInstances(path)
	instances = append(pruneDead(instances), inst)
	return writeInstances(path, instances)
}

// UnregisterInstance removes every entry for pid.
func UnregisterInstance(pid int) error {
	path, err := instancesPath()
	if err != nil {
		return err
	}

	instances, _ := readInstances(path)
	return writeInstances(path, filterInstances(instances, func(inst Instance) bool {
		return inst.PID != pid
	}))
}

// ListInstances returns the live instances.
func ListInstances() ([]Instance, error) {
	path, err := instancesPath()
	if err != nil {
		return nil, err
	}

	instances, err := readInstances(path)
	if err != nil {
		return nil, err
	}
	live := pruneDead(instances)
	if len(live) != len(instances) {
		_ = writeInstances(path, live)
	}
	return live, nil
}

// FindInstanceByPort returns the live instance bound to port, or nil.
// Port 0 asks for an auto-assigned port and never conflicts.
func FindInstanceByPort(port int) *Instance {
	if port <= 0 {
		return nil
	}
	instances, err := ListInstances()
	if err != nil {
		return nil
	}
	for i := range instances {
		if instances[i].Port == port {
			return &instances[i]
		}
	}
	return nil
}

func readInstances(path string) ([]Instance, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var instances []Instance
	if err := json.Unmarshal(data, &instances); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return instances, nil
}

func writeInstances(path string, instances []Instance) error {
	if instances == nil {
		instances = []Instance{}
	}
	data, err := json.MarshalIndent(instances, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func pruneDead(instances []Instance) []Instance {
	return filterInstances(instances, func(inst Instance) bool {
		return processAlive(inst.PID)
	})
}

// filterInstances returns a new slice of the entries keep accepts.
func filterInstances(instances []Instance, keep func(Instance) bool) []Instance {
	out := make([]Instance, 0, len(instances))
	for _, inst := range instances {
		if keep(inst) {
			out = append(out, inst)
		}
	}
	return out
}
