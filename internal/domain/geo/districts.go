// Package geo holds the supported district and block reference data.
package geo

import "fmt"

// Districts lists the 38 supported districts
var Districts = []string{
	"Araria", "Arwal", "Aurangabad", "Banka", "Begusarai", "Bhagalpur", "Bhojpur", "Buxar",
	"Darbhanga", "East Champaran", "Gaya", "Gopalganj", "Jamui", "Jehanabad", "Kaimur",
	"Katihar", "Khagaria", "Kishanganj", "Lakhisarai", "Madhepura", "Madhubani", "Munger",
	"Muzaffarpur", "Nalanda", "Nawada", "Patna", "Purnia", "Rohtas", "Saharsa", "Samastipur",
	"Saran", "Sheikhpura", "Sheohar", "Sitamarhi", "Siwan", "Supaul", "Vaishali", "West Champaran",
}

// IsDistrict reports whether the district is in the supported set
func IsDistrict(district string) bool {
	for _, d := range Districts {
		if d == district {
			return true
		}
	}
	return false
}

// BlocksForDistrict returns the generated block list for a district, empty
// for an unknown district. Patna carries 23 blocks, every other district 14.
func BlocksForDistrict(district string) []string {
	if !IsDistrict(district) {
		return nil
	}
	count := 14
	if district == "Patna" {
		count = 23
	}
	blocks := make([]string, count)
	for i := range blocks {
		blocks[i] = fmt.Sprintf("%s Block %d", district, i+1)
	}
	return blocks
}

// IsBlockInDistrict reports whether the block belongs to the district's
// generated block set
func IsBlockInDistrict(district, block string) bool {
	for _, b := range BlocksForDistrict(district) {
		if b == block {
			return true
		}
	}
	return false
}
