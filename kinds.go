package blockstate

// The kind tables below mirror the bundled state data and are regenerated
// together with it. The order of the constants must match the order in
// which kinds first appear in the state table.

const (
	KindAir BlockKind = iota
	KindStone
	KindGranite
	KindPolishedGranite
	KindDiorite
	KindAndesite
	KindCobblestone
	KindBedrock
	KindDirt
	KindCoarseDirt
	KindGrassBlock
	KindPodzol
	KindMycelium
	KindSand
	KindGravel
	KindGoldOre
	KindIronOre
	KindCoalOre
	KindOakPlanks
	KindOakLog
	KindSpruceLog
	KindBirchLog
	KindOakLeaves
	KindSpruceLeaves
	KindWater
	KindLava
	KindGlass
	KindObsidian
	KindIce
	KindPackedIce
	KindSnow
	KindClay
	KindPumpkin
	KindNetherrack
	KindSoulSand
	KindGlowstone
	KindTerracotta
	KindCraftingTable
	KindFurnace
	KindChest
	KindTrappedChest
	KindEnderChest
	KindLadder
	KindTorch
	KindWallTorch
	KindLever
	KindStoneButton
	KindRedstoneLamp
	KindFarmland
	KindWheat
	KindCactus
	KindOakSlab
	KindStoneSlab
	KindCobblestoneSlab
	KindOakStairs
	KindCobblestoneStairs
	KindBrickStairs
	KindOakDoor
	KindIronDoor
	KindWhiteWool
	KindOrangeWool
	KindMagentaWool
	KindLightBlueWool
	KindYellowWool
	KindLimeWool
	KindPinkWool
	KindGrayWool
	KindLightGrayWool
	KindCyanWool
	KindPurpleWool
	KindBlueWool
	KindBrownWool
	KindGreenWool
	KindRedWool
	KindBlackWool

	kindCount
)

const (
	SimplifiedAir SimplifiedKind = iota
	SimplifiedStone
	SimplifiedGranite
	SimplifiedDiorite
	SimplifiedAndesite
	SimplifiedCobblestone
	SimplifiedBedrock
	SimplifiedDirt
	SimplifiedGrassBlock
	SimplifiedPodzol
	SimplifiedMycelium
	SimplifiedSand
	SimplifiedGravel
	SimplifiedOre
	SimplifiedPlanks
	SimplifiedLog
	SimplifiedLeaves
	SimplifiedWater
	SimplifiedLava
	SimplifiedGlass
	SimplifiedObsidian
	SimplifiedIce
	SimplifiedSnow
	SimplifiedClay
	SimplifiedPumpkin
	SimplifiedNetherrack
	SimplifiedSoulSand
	SimplifiedGlowstone
	SimplifiedTerracotta
	SimplifiedCraftingTable
	SimplifiedFurnace
	SimplifiedChest
	SimplifiedEnderChest
	SimplifiedLadder
	SimplifiedTorch
	SimplifiedLever
	SimplifiedButton
	SimplifiedRedstoneLamp
	SimplifiedFarmland
	SimplifiedWheat
	SimplifiedCactus
	SimplifiedSlab
	SimplifiedStairs
	SimplifiedDoor
	SimplifiedWool
)

var kindNames = [kindCount]string{
	KindAir:               "minecraft:air",
	KindStone:             "minecraft:stone",
	KindGranite:           "minecraft:granite",
	KindPolishedGranite:   "minecraft:polished_granite",
	KindDiorite:           "minecraft:diorite",
	KindAndesite:          "minecraft:andesite",
	KindCobblestone:       "minecraft:cobblestone",
	KindBedrock:           "minecraft:bedrock",
	KindDirt:              "minecraft:dirt",
	KindCoarseDirt:        "minecraft:coarse_dirt",
	KindGrassBlock:        "minecraft:grass_block",
	KindPodzol:            "minecraft:podzol",
	KindMycelium:          "minecraft:mycelium",
	KindSand:              "minecraft:sand",
	KindGravel:            "minecraft:gravel",
	KindGoldOre:           "minecraft:gold_ore",
	KindIronOre:           "minecraft:iron_ore",
	KindCoalOre:           "minecraft:coal_ore",
	KindOakPlanks:         "minecraft:oak_planks",
	KindOakLog:            "minecraft:oak_log",
	KindSpruceLog:         "minecraft:spruce_log",
	KindBirchLog:          "minecraft:birch_log",
	KindOakLeaves:         "minecraft:oak_leaves",
	KindSpruceLeaves:      "minecraft:spruce_leaves",
	KindWater:             "minecraft:water",
	KindLava:              "minecraft:lava",
	KindGlass:             "minecraft:glass",
	KindObsidian:          "minecraft:obsidian",
	KindIce:               "minecraft:ice",
	KindPackedIce:         "minecraft:packed_ice",
	KindSnow:              "minecraft:snow",
	KindClay:              "minecraft:clay",
	KindPumpkin:           "minecraft:pumpkin",
	KindNetherrack:        "minecraft:netherrack",
	KindSoulSand:          "minecraft:soul_sand",
	KindGlowstone:         "minecraft:glowstone",
	KindTerracotta:        "minecraft:terracotta",
	KindCraftingTable:     "minecraft:crafting_table",
	KindFurnace:           "minecraft:furnace",
	KindChest:             "minecraft:chest",
	KindTrappedChest:      "minecraft:trapped_chest",
	KindEnderChest:        "minecraft:ender_chest",
	KindLadder:            "minecraft:ladder",
	KindTorch:             "minecraft:torch",
	KindWallTorch:         "minecraft:wall_torch",
	KindLever:             "minecraft:lever",
	KindStoneButton:       "minecraft:stone_button",
	KindRedstoneLamp:      "minecraft:redstone_lamp",
	KindFarmland:          "minecraft:farmland",
	KindWheat:             "minecraft:wheat",
	KindCactus:            "minecraft:cactus",
	KindOakSlab:           "minecraft:oak_slab",
	KindStoneSlab:         "minecraft:stone_slab",
	KindCobblestoneSlab:   "minecraft:cobblestone_slab",
	KindOakStairs:         "minecraft:oak_stairs",
	KindCobblestoneStairs: "minecraft:cobblestone_stairs",
	KindBrickStairs:       "minecraft:brick_stairs",
	KindOakDoor:           "minecraft:oak_door",
	KindIronDoor:          "minecraft:iron_door",
	KindWhiteWool:         "minecraft:white_wool",
	KindOrangeWool:        "minecraft:orange_wool",
	KindMagentaWool:       "minecraft:magenta_wool",
	KindLightBlueWool:     "minecraft:light_blue_wool",
	KindYellowWool:        "minecraft:yellow_wool",
	KindLimeWool:          "minecraft:lime_wool",
	KindPinkWool:          "minecraft:pink_wool",
	KindGrayWool:          "minecraft:gray_wool",
	KindLightGrayWool:     "minecraft:light_gray_wool",
	KindCyanWool:          "minecraft:cyan_wool",
	KindPurpleWool:        "minecraft:purple_wool",
	KindBlueWool:          "minecraft:blue_wool",
	KindBrownWool:         "minecraft:brown_wool",
	KindGreenWool:         "minecraft:green_wool",
	KindRedWool:           "minecraft:red_wool",
	KindBlackWool:         "minecraft:black_wool",
}

var simplifiedKinds = [kindCount]SimplifiedKind{
	KindAir:               SimplifiedAir,
	KindStone:             SimplifiedStone,
	KindGranite:           SimplifiedGranite,
	KindPolishedGranite:   SimplifiedGranite,
	KindDiorite:           SimplifiedDiorite,
	KindAndesite:          SimplifiedAndesite,
	KindCobblestone:       SimplifiedCobblestone,
	KindBedrock:           SimplifiedBedrock,
	KindDirt:              SimplifiedDirt,
	KindCoarseDirt:        SimplifiedDirt,
	KindGrassBlock:        SimplifiedGrassBlock,
	KindPodzol:            SimplifiedPodzol,
	KindMycelium:          SimplifiedMycelium,
	KindSand:              SimplifiedSand,
	KindGravel:            SimplifiedGravel,
	KindGoldOre:           SimplifiedOre,
	KindIronOre:           SimplifiedOre,
	KindCoalOre:           SimplifiedOre,
	KindOakPlanks:         SimplifiedPlanks,
	KindOakLog:            SimplifiedLog,
	KindSpruceLog:         SimplifiedLog,
	KindBirchLog:          SimplifiedLog,
	KindOakLeaves:         SimplifiedLeaves,
	KindSpruceLeaves:      SimplifiedLeaves,
	KindWater:             SimplifiedWater,
	KindLava:              SimplifiedLava,
	KindGlass:             SimplifiedGlass,
	KindObsidian:          SimplifiedObsidian,
	KindIce:               SimplifiedIce,
	KindPackedIce:         SimplifiedIce,
	KindSnow:              SimplifiedSnow,
	KindClay:              SimplifiedClay,
	KindPumpkin:           SimplifiedPumpkin,
	KindNetherrack:        SimplifiedNetherrack,
	KindSoulSand:          SimplifiedSoulSand,
	KindGlowstone:         SimplifiedGlowstone,
	KindTerracotta:        SimplifiedTerracotta,
	KindCraftingTable:     SimplifiedCraftingTable,
	KindFurnace:           SimplifiedFurnace,
	KindChest:             SimplifiedChest,
	KindTrappedChest:      SimplifiedChest,
	KindEnderChest:        SimplifiedEnderChest,
	KindLadder:            SimplifiedLadder,
	KindTorch:             SimplifiedTorch,
	KindWallTorch:         SimplifiedTorch,
	KindLever:             SimplifiedLever,
	KindStoneButton:       SimplifiedButton,
	KindRedstoneLamp:      SimplifiedRedstoneLamp,
	KindFarmland:          SimplifiedFarmland,
	KindWheat:             SimplifiedWheat,
	KindCactus:            SimplifiedCactus,
	KindOakSlab:           SimplifiedSlab,
	KindStoneSlab:         SimplifiedSlab,
	KindCobblestoneSlab:   SimplifiedSlab,
	KindOakStairs:         SimplifiedStairs,
	KindCobblestoneStairs: SimplifiedStairs,
	KindBrickStairs:       SimplifiedStairs,
	KindOakDoor:           SimplifiedDoor,
	KindIronDoor:          SimplifiedDoor,
	KindWhiteWool:         SimplifiedWool,
	KindOrangeWool:        SimplifiedWool,
	KindMagentaWool:       SimplifiedWool,
	KindLightBlueWool:     SimplifiedWool,
	KindYellowWool:        SimplifiedWool,
	KindLimeWool:          SimplifiedWool,
	KindPinkWool:          SimplifiedWool,
	KindGrayWool:          SimplifiedWool,
	KindLightGrayWool:     SimplifiedWool,
	KindCyanWool:          SimplifiedWool,
	KindPurpleWool:        SimplifiedWool,
	KindBlueWool:          SimplifiedWool,
	KindBrownWool:         SimplifiedWool,
	KindGreenWool:         SimplifiedWool,
	KindRedWool:           SimplifiedWool,
	KindBlackWool:         SimplifiedWool,
}

var simplifiedNames = [...]string{
	SimplifiedAir:           "air",
	SimplifiedStone:         "stone",
	SimplifiedGranite:       "granite",
	SimplifiedDiorite:       "diorite",
	SimplifiedAndesite:      "andesite",
	SimplifiedCobblestone:   "cobblestone",
	SimplifiedBedrock:       "bedrock",
	SimplifiedDirt:          "dirt",
	SimplifiedGrassBlock:    "grass_block",
	SimplifiedPodzol:        "podzol",
	SimplifiedMycelium:      "mycelium",
	SimplifiedSand:          "sand",
	SimplifiedGravel:        "gravel",
	SimplifiedOre:           "ore",
	SimplifiedPlanks:        "planks",
	SimplifiedLog:           "log",
	SimplifiedLeaves:        "leaves",
	SimplifiedWater:         "water",
	SimplifiedLava:          "lava",
	SimplifiedGlass:         "glass",
	SimplifiedObsidian:      "obsidian",
	SimplifiedIce:           "ice",
	SimplifiedSnow:          "snow",
	SimplifiedClay:          "clay",
	SimplifiedPumpkin:       "pumpkin",
	SimplifiedNetherrack:    "netherrack",
	SimplifiedSoulSand:      "soul_sand",
	SimplifiedGlowstone:     "glowstone",
	SimplifiedTerracotta:    "terracotta",
	SimplifiedCraftingTable: "crafting_table",
	SimplifiedFurnace:       "furnace",
	SimplifiedChest:         "chest",
	SimplifiedEnderChest:    "ender_chest",
	SimplifiedLadder:        "ladder",
	SimplifiedTorch:         "torch",
	SimplifiedLever:         "lever",
	SimplifiedButton:        "button",
	SimplifiedRedstoneLamp:  "redstone_lamp",
	SimplifiedFarmland:      "farmland",
	SimplifiedWheat:         "wheat",
	SimplifiedCactus:        "cactus",
	SimplifiedSlab:          "slab",
	SimplifiedStairs:        "stairs",
	SimplifiedDoor:          "door",
	SimplifiedWool:          "wool",
}
