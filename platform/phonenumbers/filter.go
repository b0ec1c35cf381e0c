package phonenumbers

// MetadataFilter strips fields from region rules before the table is
// finalized, so a deployment can ship a smaller rule set. An empty
// filter keeps everything; the lite build drops example numbers.
type MetadataFilter struct {
	dropExampleNumbers  bool
	dropPossibleLengths bool
}

// EmptyFilter keeps every field.
func EmptyFilter() *MetadataFilter {
	return &MetadataFilter{}
}

// ForLiteBuild drops example numbers, the one field only needed by
// tooling and the example-number endpoints.
func ForLiteBuild() *MetadataFilter {
	return &MetadataFilter{dropExampleNumbers: true}
}

// ForSpecialBuild keeps example numbers but drops possible lengths,
// for builds that validate purely by pattern.
func ForSpecialBuild() *MetadataFilter {
	return &MetadataFilter{dropPossibleLengths: true}
}

// ShouldDropExampleNumbers reports whether the filter removes example numbers.
func (f *MetadataFilter) ShouldDropExampleNumbers() bool {
	return f.dropExampleNumbers
}

// ShouldDropPossibleLengths reports whether the filter removes length data.
func (f *MetadataFilter) ShouldDropPossibleLengths() bool {
	return f.dropPossibleLengths
}

// apply strips the configured fields from every descriptor of the
// region. Lengths are cleared on child descriptors and repopulated from
// the general descriptor, never left half-removed, so length checks
// stay self-consistent after filtering.
func (f *MetadataFilter) apply(r *RegionRules) {
	if f == nil || (!f.dropExampleNumbers && !f.dropPossibleLengths) {
		return
	}
	children := []*NumberDesc{
		r.FixedLine, r.Mobile, r.TollFree, r.PremiumRate, r.SharedCost,
		r.PersonalNumber, r.VoIP, r.Pager, r.UAN, r.Voicemail,
		r.NoInternationalDialling,
	}
	for _, desc := range children {
		if desc == nil {
			continue
		}
		if f.dropExampleNumbers {
			desc.ExampleNumber = ""
		}
		if f.dropPossibleLengths {
			desc.PossibleLengths = nil
			desc.PossibleLengthsLocalOnly = nil
		}
	}
	if f.dropPossibleLengths && r.GeneralDesc != nil {
		r.GeneralDesc.PossibleLengths = nil
		r.GeneralDesc.PossibleLengthsLocalOnly = nil
	}
}
