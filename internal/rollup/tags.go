package rollup

// TagVolume counts how many in-window sub-entries carried a tag.
// Field names follow the group-volume JSON shape clients already consume.
type TagVolume struct {
	Tag   string `json:"group"`
	Count int    `json:"sets"`
}

// TagVolumes counts tag occurrences over the entries that fall in the window and
// whose category differs from exclude. Each tag on an entry adds one.
// The result is in first-seen order, not sorted.
func TagVolumes[E any](
	w Window,
	entries []E,
	keyOf func(E) DayKey,
	tagsOf func(E) []string,
	categoryOf func(E) string,
	exclude string,
) []TagVolume {
	inWindow := make(map[DayKey]struct{}, len(w))
	for _, k := range w {
		inWindow[k] = struct{}{}
	}

	volumes := make([]TagVolume, 0)
	pos := make(map[string]int)
	for _, e := range entries {
		if _, ok := inWindow[keyOf(e)]; !ok {
			continue
		}
		if categoryOf(e) == exclude {
			continue
		}
		for _, tag := range tagsOf(e) {
			i, seen := pos[tag]
			if !seen {
				i = len(volumes)
				pos[tag] = i
				volumes = append(volumes, TagVolume{Tag: tag})
			}
			volumes[i].Count++
		}
	}

	return volumes
}
