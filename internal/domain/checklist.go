package domain

// ChecklistItem is one yes/no inspection question.
type ChecklistItem struct {
	ID       string
	Question string
}

// FireChecklist is the fixed fire extinguisher inspection checklist.
var FireChecklist = []ChecklistItem{
	{ID: "maintenanceTag", Question: "Has a valid maintenance tag"},
	{ID: "mounting", Question: "Mounted in an easily accessible place, no debris or material stacked in front of it."},
	{ID: "safetyPin", Question: "Safety pin is in place and intact. Nothing else should be used in place of the pin."},
	{ID: "label", Question: "Label is clear and extinguisher type and instructions can be read easily."},
	{ID: "handle", Question: "Handle is intact and not bent or broken."},
	{ID: "pressureGauge", Question: `Pressure gauge is in the green and is not damaged or showing "recharge"`},
	{ID: "nozzle", Question: "Discharge hoses/nozzle is in good shape and not clogged, cracked, or broken"},
	{ID: "invertTest", Question: "Extinguisher was turned upside down at least three times to make sure it is full."},
	{ID: "location", Question: "Location of extinguisher is easily identifiable by signs"},
	{ID: "cleaned", Question: "Dust and wipe down the extinguisher"},
	{ID: "tagSigned", Question: "Annual maintenance tag is signed and dated"},
}

// LadderChecklist is the fixed monthly ladder inspection checklist.
var LadderChecklist = []ChecklistItem{
	{ID: "freeDents", Question: "Free from dents, cracks and damages"},
	{ID: "feetPads", Question: "Feet of ladder work properly and have slip-resistant pads"},
	{ID: "rungLocks", Question: "Rung locks and spreader braces are working"},
	{ID: "sideRails", Question: "Side rails have no signs of deterioration, dents and rusts"},
	{ID: "boltsRivets", Question: "Bolts and rivets are secured"},
	{ID: "rope", Question: "Rope is undamaged"},
	{ID: "steps", Question: "Steps and rungs are free from oil, grease and other materials"},
	{ID: "storage", Question: "Ladder stored properly (when not in use)"},
}

// CustodialAreas is the closed set of custodial inspection areas.
var CustodialAreas = []string{
	"Break / kitchenette",
	"Cafeteria",
	"Coffee stations",
	"Cold Rooms",
	"Conference Rooms",
	"Copy / fax areas",
	"Elevators",
	"Fitness rooms / center",
	"GAP space",
	"Grey space",
	"Hallway / corridor",
	"Janitor closets",
	"Labs",
	"LAR",
	"Loading docks",
	"Lobby / atriums",
	"Mail and copy centers",
	"Manufacturing",
	"Office",
	"Penthouse Mez",
	"Restroom",
	"Shops",
	"Stairwell",
	"Stockroom",
	"Trash",
	"Warehouse",
	"Other",
	"Garage - Handrails",
	"Garage - Elevator",
	"Garage - Glass",
	"Garage - Trash Collection",
	"Garage - Litter Removal",
}

// LandscapingAreas is the closed set of landscaping inspection statements.
var LandscapingAreas = []string{
	"Hedges have been properly trimmed",
	"The grass has cut to the appropriate height",
	"The sidewalks & curbs are properly edged",
	"The grass around the light poles is cut",
	"The grass around the signs is cut",
	"The grass around the trees is cut",
	"The grass around the fire hydrants is cut",
	"The irrigation are scheduled at the appropriate times",
	"The sprinklers are correctly aligned",
	"Mulch needs have been properly filled",
	"Mulch has been removed from the grass",
	"There is proper distance between the mulch & the grass",
	"There is proper clearance between the mulch & surrounding buildings",
	"Dead trees are removed correctly",
	"All trees have been correctly pruned",
	"All dead trees have been removed",
	"All dead limbs have been removed",
	"All dead shrubs have been removed",
	"All dead flowers have been removed",
	"All dead grass has been removed",
	"All weeds have been removed",
	"All trash has been removed",
	"All debris has been removed",
	"All tools have been properly stored",
	"All equipment has been properly stored",
	"All materials have been properly stored",
	"All chemicals have been properly stored",
	"All containers have been properly stored",
	"All trash cans have been properly stored",
	"All debris has been properly disposed",
	"All tools have been properly cleaned",
	"All equipment has been properly cleaned",
	"All materials have been properly cleaned",
	"All chemicals have been properly stored & sealed",
	"All containers have been properly cleaned",
	"All trash cans have been properly cleaned",
}

// QuestionText returns the question for a checklist item ID, or the ID
// itself when the item is unknown.
func QuestionText(items []ChecklistItem, id string) string {
	for _, it := range items {
		if it.ID == id {
			return it.Question
		}
	}
	return id
}

// AreasFor returns the area catalog for an area-rated audit type.
func AreasFor(t AuditType) []string {
	switch t {
	case AuditTypeCustodial:
		return CustodialAreas
	case AuditTypeLandscaping:
		return LandscapingAreas
	}
	return nil
}
