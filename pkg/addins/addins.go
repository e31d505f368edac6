// Package addins reads the game's Settings/AddIns.xml registry, the
// list of installed content modules. The scanner never consults it;
// it exists so an operator can correlate conflicting archive paths
// with the addin that shipped them.
package addins

import (
	"os"
	"sort"
	"strconv"

	"github.com/beevik/etree"

	"github.com/azlands/daoscan/pkg/errors"
	"github.com/azlands/daoscan/pkg/types"
)

// Load parses the AddIns.xml registry at path. A missing file is not
// an error: a clean install has no addins, so the list is just empty.
func Load(path string) ([]types.Addin, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "reading addin registry %s", path)
	}

	root := doc.SelectElement("AddInsList")
	if root == nil {
		return nil, errors.Newf(errors.ErrInvalidInput, "addin registry %s has no AddInsList element", path)
	}

	var addins []types.Addin
	for _, item := range root.SelectElements("AddInItem") {
		addin := types.Addin{
			UID:  item.SelectAttrValue("UID", ""),
			Name: item.SelectAttrValue("Name", ""),
		}
		if priority, err := strconv.Atoi(item.SelectAttrValue("Priority", "")); err == nil {
			addin.Priority = priority
		}
		addin.Enabled = item.SelectAttrValue("Enabled", "0") == "1"
		addins = append(addins, addin)
	}

	sort.Slice(addins, func(i, j int) bool {
		if addins[i].Priority != addins[j].Priority {
			return addins[i].Priority < addins[j].Priority
		}
		return addins[i].Name < addins[j].Name
	})

	return addins, nil
}
