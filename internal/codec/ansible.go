package codec

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"assetnorm/internal/domain"

	"gopkg.in/yaml.v3"
)

var groupNameInvalid = regexp.MustCompile(`[^a-z0-9_]+`)

// AnsibleCodec exports normalized records as an Ansible inventory
type AnsibleCodec struct{}

// NewAnsibleCodec creates a new Ansible codec
func NewAnsibleCodec() *AnsibleCodec {
	return &AnsibleCodec{}
}

// Format returns the codec format identifier
func (c *AnsibleCodec) Format() string {
	return "ansible-inventory"
}

// ansibleInventory represents the Ansible inventory structure
type ansibleInventory struct {
	All ansibleGroup `yaml:"all"`
}

type ansibleGroup struct {
	Children map[string]ansibleGroupDef `yaml:"children,omitempty"`
}

type ansibleGroupDef struct {
	Hosts map[string]ansibleHost `yaml:"hosts,omitempty"`
}

type ansibleHost struct {
	AnsibleHost string         `yaml:"ansible_host,omitempty"`
	Vars        map[string]any `yaml:",inline"`
}

// Export groups records by device type. A record is named by its FQDN, then
// host name, then IP, whichever validated first; records with none of these
// are skipped.
func (c *AnsibleCodec) Export(records []domain.OutputRecord, w io.Writer) error {
	inv := ansibleInventory{
		All: ansibleGroup{
			Children: make(map[string]ansibleGroupDef),
		},
	}

	for _, rec := range records {
		name := inventoryName(&rec)
		if name == "" {
			continue
		}

		groupName := groupNameFor(rec.DeviceType)
		group, ok := inv.All.Children[groupName]
		if !ok {
			group = ansibleGroupDef{Hosts: make(map[string]ansibleHost)}
			inv.All.Children[groupName] = group
		}

		host := ansibleHost{Vars: make(map[string]any)}
		if rec.IPValid {
			host.AnsibleHost = rec.IP
		}
		if rec.MACValid {
			host.Vars["mac_address"] = rec.MAC
		}
		if rec.SiteNormalized != "" {
			host.Vars["site"] = rec.SiteNormalized
		}
		if rec.Owner.Email != "" {
			host.Vars["owner_email"] = rec.Owner.Email
		}
		if rec.Owner.Team != "" {
			host.Vars["owner_team"] = rec.Owner.Team
		}
		if rec.SourceRowID != "" {
			host.Vars["source_row_id"] = rec.SourceRowID
		}

		group.Hosts[name] = host
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()

	if err := encoder.Encode(&inv); err != nil {
		return fmt.Errorf("failed to encode Ansible inventory: %w", err)
	}

	return nil
}

func inventoryName(rec *domain.OutputRecord) string {
	switch {
	case rec.FQDNValid:
		return rec.FQDN
	case rec.HostnameValid:
		return rec.Hostname
	case rec.IPValid:
		return rec.IP
	}
	return ""
}

// groupNameFor turns a device type into a valid Ansible group name
func groupNameFor(t domain.DeviceType) string {
	name := groupNameInvalid.ReplaceAllString(strings.ToLower(string(t)), "_")
	name = strings.Trim(name, "_")
	if name == "" {
		return string(domain.DeviceTypeUnknown)
	}
	return name
}
