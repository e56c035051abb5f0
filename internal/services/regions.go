package services

import "strings"

// stateAlias pairs a canonical Indian state name with its spelling
// variations seen in station addresses. Order matters: longer, less
// ambiguous names come before states with short aliases so that
// contains-matching picks the most specific state first.
type stateAlias struct {
	name    string
	aliases []string
}

var stateAliases = []stateAlias{
	{"Odisha", []string{"odisha", "orissa"}},
	{"Andhra Pradesh", []string{"andhra pradesh", "andhra"}},
	{"West Bengal", []string{"west bengal", "bengal"}},
	{"Karnataka", []string{"karnataka"}},
	{"Tamil Nadu", []string{"tamil nadu", "tamilnadu"}},
	{"Kerala", []string{"kerala"}},
	{"Maharashtra", []string{"maharashtra"}},
	{"Gujarat", []string{"gujarat"}},
	{"Rajasthan", []string{"rajasthan"}},
	{"Madhya Pradesh", []string{"madhya pradesh"}},
	{"Uttar Pradesh", []string{"uttar pradesh"}},
	{"Bihar", []string{"bihar"}},
	{"Jharkhand", []string{"jharkhand"}},
	{"Chhattisgarh", []string{"chhattisgarh"}},
	{"Telangana", []string{"telangana"}},
	{"Haryana", []string{"haryana"}},
	{"Punjab", []string{"punjab"}},
	{"Himachal Pradesh", []string{"himachal pradesh", "himachal"}},
	{"Uttarakhand", []string{"uttarakhand", "uttaranchal"}},
	{"Delhi", []string{"delhi", "nct"}},
	{"Chandigarh", []string{"chandigarh"}},
	{"Goa", []string{"goa"}},
	{"Assam", []string{"assam"}},
	{"Arunachal Pradesh", []string{"arunachal pradesh", "arunachal"}},
	{"Nagaland", []string{"nagaland"}},
	{"Manipur", []string{"manipur"}},
	{"Mizoram", []string{"mizoram"}},
	{"Tripura", []string{"tripura"}},
	{"Meghalaya", []string{"meghalaya"}},
	{"Sikkim", []string{"sikkim"}},
	{"Jammu and Kashmir", []string{"jammu and kashmir", "j&k"}},
	{"Ladakh", []string{"ladakh"}},
	{"Dadra and Nagar Haveli", []string{"dadra and nagar haveli"}},
	{"Daman and Diu", []string{"daman and diu"}},
	{"Puducherry", []string{"puducherry", "pondicherry"}},
	{"Andaman and Nicobar Islands", []string{"andaman and nicobar", "andaman"}},
	{"Lakshadweep", []string{"lakshadweep"}},
}

// StateFromAddress matches a state name or variation inside a formatted
// address. Returns "" when nothing matches.
func StateFromAddress(address string) string {
	if address == "" {
		return ""
	}
	lower := strings.ToLower(address)
	for _, s := range stateAliases {
		for _, a := range s.aliases {
			if strings.Contains(lower, a) {
				return s.name
			}
		}
	}
	return ""
}
