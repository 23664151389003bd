package lattice

import (
	"fmt"
	"strings"

	"github.com/diffractionlab/go-cif"
)

// Site is one atomic site of a crystal: the ion occupying it and its
// fractional coordinates in the unit cell.
type Site struct {
	Ion      string
	Position [3]float64
}

// Crystal couples a direct lattice with a space group and the atomic sites
// of the asymmetric unit, keyed by site label.
type Crystal struct {
	Lattice    *DirectLattice
	SpaceGroup string
	Sites      map[string]Site
}

// atom_site loop columns read by CrystalFromItems.
const (
	colSiteLabel = "atom_site_label"
	colSiteIon   = "atom_site_type_symbol"
	colSiteX     = "atom_site_fract_x"
	colSiteY     = "atom_site_fract_y"
	colSiteZ     = "atom_site_fract_z"
)

// CrystalFromItems builds a crystal from the data items of one parsed CIF
// block: the lattice parameters, the Hermann-Mauguin space group symbol and
// the atom_site loop.
func CrystalFromItems(items *cif.Items) (*Crystal, error) {
	direct, err := DirectLatticeFromItems(items)
	if err != nil {
		return nil, err
	}

	group, ok := items.Scalar(cifNames["space_group"])
	if !ok {
		return nil, fmt.Errorf("parameter %q missing from input CIF", cifNames["space_group"])
	}
	group = strings.TrimSpace(cif.Unquote(group))

	sites, err := atomSites(items)
	if err != nil {
		return nil, err
	}

	return &Crystal{Lattice: direct, SpaceGroup: group, Sites: sites}, nil
}

// atomSites reads the atom_site loop into a label-keyed site map.
func atomSites(items *cif.Items) (map[string]Site, error) {
	table, ok := items.Table("atom_site")
	if !ok {
		return nil, fmt.Errorf("atom_site loop missing from input CIF")
	}
	declared := make(map[string]bool, len(table.Columns))
	for _, col := range table.Columns {
		declared[col] = true
	}
	for _, col := range [...]string{colSiteLabel, colSiteIon, colSiteX, colSiteY, colSiteZ} {
		if !declared[col] {
			return nil, fmt.Errorf("atom_site loop is missing column %q", col)
		}
	}

	xs, err := cif.NumericColumn(table.Column(colSiteX))
	if err != nil {
		return nil, fmt.Errorf("column %q: %w", colSiteX, err)
	}
	ys, err := cif.NumericColumn(table.Column(colSiteY))
	if err != nil {
		return nil, fmt.Errorf("column %q: %w", colSiteY, err)
	}
	zs, err := cif.NumericColumn(table.Column(colSiteZ))
	if err != nil {
		return nil, fmt.Errorf("column %q: %w", colSiteZ, err)
	}

	labels := table.Column(colSiteLabel)
	ions := table.Column(colSiteIon)
	sites := make(map[string]Site, len(labels))
	for i, label := range labels {
		sites[label] = Site{
			Ion:      ions[i],
			Position: [3]float64{xs[i], ys[i], zs[i]},
		}
	}
	return sites, nil
}
