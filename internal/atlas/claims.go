package atlas

// ClaimSet records which atlas cells have been taken and by which texture.
// Split uses it to consume each atlas tile at most once, merge to write each
// atlas cell at most once.
type ClaimSet struct {
	geom    Geometry
	claimed []bool
	owners  []string
	count   int
}

// NewClaimSet returns an empty claim set covering the whole atlas.
func NewClaimSet(g Geometry) *ClaimSet {
	return &ClaimSet{
		geom:    g,
		claimed: make([]bool, g.Cells()),
		owners:  make([]string, g.Cells()),
	}
}

func (s *ClaimSet) index(c Coord) int {
	return c.Row*s.geom.Cols + c.Col
}

// Claim marks c as taken by owner. If c was already claimed it returns the
// previous owner and false and leaves the set unchanged. c must lie inside
// the atlas.
func (s *ClaimSet) Claim(c Coord, owner string) (string, bool) {
	i := s.index(c)
	if s.claimed[i] {
		return s.owners[i], false
	}
	s.claimed[i] = true
	s.owners[i] = owner
	s.count++
	return owner, true
}

// Owner returns the texture that claimed c, if any.
func (s *ClaimSet) Owner(c Coord) (string, bool) {
	i := s.index(c)
	return s.owners[i], s.claimed[i]
}

// Claimed reports whether c has been claimed.
func (s *ClaimSet) Claimed(c Coord) bool {
	return s.claimed[s.index(c)]
}

// Count returns the number of claimed cells.
func (s *ClaimSet) Count() int { return s.count }

// Unclaimed lists the cells nobody claimed, row by row.
func (s *ClaimSet) Unclaimed() []Coord {
	free := make([]Coord, 0, len(s.claimed)-s.count)
	for i, taken := range s.claimed {
		if !taken {
			free = append(free, C(i/s.geom.Cols, i%s.geom.Cols))
		}
	}
	return free
}
