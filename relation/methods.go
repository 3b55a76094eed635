package relation

// ensure grows rows so that index x is addressable.
func (r *Relation) ensure(x int) {
	if x < len(r.rows) {
		return
	}
	grown := make([]row, x+1)
	copy(grown, r.rows)
	r.rows = grown
}

// Add inserts (x, y); idempotent.
func (r *Relation) Add(x, y int) {
	r.ensure(x)
	row := r.rows[x]
	if row == nil {
		row = newRow(r.startKind(x))
		r.rows[x] = row
	}
	row.add(y)
	if sr, ok := row.(*simpleRow); ok && sr.Count() > rowPromoteThreshold {
		r.rows[x] = sr.promote()
	}
}

// Remove deletes (x, y); a no-op if absent.
func (r *Relation) Remove(x, y int) {
	if x < 0 || x >= len(r.rows) || r.rows[x] == nil {
		return
	}
	r.rows[x].remove(y)
	if r.rows[x].Count() == 0 {
		r.rows[x] = nil
	}
}

// RemoveAll deletes every pair with first coordinate x.
func (r *Relation) RemoveAll(x int) {
	if x < 0 || x >= len(r.rows) {
		return
	}
	r.rows[x] = nil
}

// Contains reports whether (x, y) ∈ R.
func (r *Relation) Contains(x, y int) bool {
	if x < 0 || x >= len(r.rows) || r.rows[x] == nil {
		return false
	}
	return r.rows[x].Contains(y)
}

// RelatedCount returns |Y_x|.
func (r *Relation) RelatedCount(x int) int {
	if x < 0 || x >= len(r.rows) || r.rows[x] == nil {
		return 0
	}
	return r.rows[x].Count()
}

// Related returns the live Y_x as a read-only Set, or an empty sentinel if
// Y_x = ∅. The returned view is invalidated by the next mutation of row x.
func (r *Relation) Related(x int) Set {
	if x < 0 || x >= len(r.rows) || r.rows[x] == nil {
		return theEmptySet
	}
	return r.rows[x]
}

// ForEach visits every pair (x, y) ∈ R in some order, stopping early if f
// returns false. Order need not be stable across unrelated mutations.
func (r *Relation) ForEach(f func(x, y int) bool) {
	for x, row := range r.rows {
		if row == nil {
			continue
		}
		stop := false
		row.ForEach(func(y int) bool {
			if !f(x, y) {
				stop = true
				return false
			}
			return true
		})
		if stop {
			return
		}
	}
}

// ForEachRow calls f once for every x with a non-empty row, in ascending x
// order, without touching Y_x itself. Cheaper than ForEach when a caller
// only needs the set of populated first-coordinates.
func (r *Relation) ForEachRow(f func(x int) bool) {
	for x, row := range r.rows {
		if row == nil {
			continue
		}
		if !f(x) {
			return
		}
	}
}

// Clone returns a deep, independent copy.
func (r *Relation) Clone() *Relation {
	c := &Relation{
		rows:       make([]row, len(r.rows)),
		implVector: append([]Kind(nil), r.implVector...),
		delegate:   r.delegate,
	}
	for i, row := range r.rows {
		if row != nil {
			c.rows[i] = row.clone()
		}
	}
	return c
}
