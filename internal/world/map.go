package world

// DefaultMap is the fixed layout the game is played on.
const DefaultMap = `
############################################################
#                                                          #
#                                                          #
#                                                          #
#                                                          #
#              ##########                                  #
#              #        #                                  #
#                       ###########################        #
#              #                                  #        #
#              ########################           #        #
#                                     #           #        #
#                                     #############        #
#############                                              #
#                                                          #
#           #                                              #
#           #                                              #
#           #                                              #
#############                                              #
#                                                          #
#                                                          #
############################################################
`

// PlayerStart is where the player begins on DefaultMap.
var PlayerStart = Point{X: 5, Y: 5}
