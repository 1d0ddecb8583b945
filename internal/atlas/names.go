package atlas

import "fmt"

// defaultTileNames names every cell of a DefaultGeometry terrain atlas,
// row by row. Cells whose purpose is unknown are named _blankRRCC or
// _unknownN.
var defaultTileNames = [16][16]string{
	{
		"grass", "stone", "dirt", "grassyDirt",
		"planks", "stoneSlabSides", "stoneSlabTop", "brick",
		"tntSide", "tntTop", "tntBottom", "spiderWeb",
		"flowerRed", "flowerYellow", "portal", "saplingOak",
	},
	{
		"cobblestone", "bedrock", "sand", "gravel",
		"logOak", "logTop", "oreBlockIron", "oreBlockGold",
		"oreBlockDiamond", "chestSmallTop", "chestSmallSide", "chestSmallFront",
		"mushroomRed", "mushroomBrown", "_blank0114", "fire1",
	},
	{
		"oreGold", "oreIron", "oreCoal", "bookshelf",
		"cobblestoneMossy", "obsidian", "grassSide", "tallGrass",
		"_unknown1", "chestLargeFrontLeft", "chestLargeFrontRight", "workbenchTop",
		"furnaceFront", "furnaceSide", "dispenser", "fire2",
	},
	{
		"sponge", "glass", "oreDiamond", "oreRedstone",
		"leavesNormalFancy", "leavesNormalFast", "stoneBrick", "deadShrub",
		"tallGrass2", "chestLargeBackLeft", "chestLargeBackRight", "workbenchSide1",
		"workbenchSide2", "furnaceLit", "furnaceTop", "saplingPine",
	},
	{
		"woolWhite", "mobSpawner", "snow", "ice",
		"snowyDirt", "cactusTop", "cactusSide", "cactusInside",
		"clay", "reeds", "jukeboxSide", "jukeboxTop",
		"lilyPad", "myceliumSide", "myceliumTop", "saplingBirch",
	},
	{
		"torch", "doorWoodTop", "doorIronTop", "ladder",
		"trapdoor", "ironBars", "farmlandWet", "farmlandDry",
		"wheat1", "wheat2", "wheat3", "wheat4",
		"wheat5", "wheat6", "wheat7", "wheat8",
	},
	{
		"lever", "doorWoodBottom", "doorIronBottom", "redstoneTorchOn",
		"stoneBrickMossy", "stoneBrickCracked", "pumpkinTop", "netherrack",
		"soulSand", "glowstone", "pistonSticky", "piston",
		"pistonSide", "pistonBack", "pistonFront", "pumpkinVine",
	},
	{
		"railCurved", "woolBlack", "woolGray", "redstoneTorchOff",
		"logPine", "logBirch", "pumpkinSide", "pumpkinFaceOff",
		"pumpkinFaceOn", "cakeTop", "cakeSide", "cakeInside",
		"cakeBottom", "mushroomGiantRed", "mushroomGiantBrown", "pumpkinVineAttached",
	},
	{
		"railStraight", "woolRed", "woolPink", "repeaterOff",
		"leavesNeedlesFancy", "leavesNeedlesFast", "bedTopLower", "bedTopUpper",
		"melonSide", "melonTop", "caldronTop", "caldronBottom",
		"_blank0812", "mushroomGiantStem", "mushroomGiantInside", "vines",
	},
	{
		"oreBlockLapis", "woolGreen", "woolGreenLime", "repeaterOn",
		"glassPaneEdge", "bedFoot", "bedSideLower", "bedSideUpper",
		"bedHead", "_blank0909", "caldronSide", "caldronFeet",
		"brewingStandBase", "brewingStandTop", "endPortalTop", "endPortalSide",
	},
	{
		"oreLapis", "woolBrown", "woolYellow", "railPoweredOff",
		"redstoneWireIntersection", "redstoneWireStraight", "enchantingTableTop", "dragonEgg",
		"_blank1008", "_blank1009", "_blank1010", "_blank1011",
		"_blank1012", "_blank1013", "endPortalEye", "endPortalBottom",
	},
	{
		"sandstoneTop", "woolBlue", "woolBlueLight", "railPoweredOn",
		"redstoneWireIntersectionGlow", "redstoneWireStraightGlow", "enchantingTableSide", "enchantingTableBottom",
		"_blank1108", "_blank1109", "_blank1110", "_blank1111",
		"_blank1112", "_blank1113", "_blank1114", "_blank1115",
	},
	{
		"sandstoneSide", "woolPurple", "woolMagenta", "railDetector",
		"_blank1204", "_blank1205", "_blank1206", "_blank1207",
		"_blank1208", "_blank1209", "_blank1210", "_blank1211",
		"_blank1212", "water1", "water2", "water3",
	},
	{
		"sandstoneBottom", "woolCyan", "woolOrange", "_blank1303",
		"_blank1304", "_blank1305", "_blank1306", "_blank1307",
		"_blank1308", "_blank1309", "_blank1310", "_blank1311",
		"_blank1312", "_blank1313", "water4", "water5",
	},
	{
		"netherBrick", "woolGrayLight", "netherWart1", "netherWart2",
		"netherWart3", "_blank1405", "_blank1406", "_blank1407",
		"_blank1408", "_blank1409", "_blank1410", "_blank1411",
		"_blank1412", "lava1", "lava2", "lava3",
	},
	{
		"breaking01", "breaking02", "breaking03", "breaking04",
		"breaking05", "breaking06", "breaking07", "breaking08",
		"breaking09", "breaking10", "_unknown2", "_unknown3",
		"_unknown4", "_unknown5", "lava4", "lava5",
	},
}

// TileName returns a file-friendly name for the atlas cell c. Atlases with
// the default 16x16 layout use the built-in names; other layouts, or cells
// outside the table, get "tile_RR_CC".
func TileName(g Geometry, c Coord) string {
	if g.Rows == len(defaultTileNames) && g.Cols == len(defaultTileNames[0]) && g.Contains(c) {
		return defaultTileNames[c.Row][c.Col]
	}
	return fmt.Sprintf("tile_%02d_%02d", c.Row, c.Col)
}
