package field

// standardLayout is the stock pitch, one character per tile, top row first.
//
//	#  wall
//	|  goal mouth defended by the player team
//	x  goal mouth defended by the enemy team
//	.  pitch marking (walkable)
const standardLayout = `#####################################################################################################################
#                                                                                                                   #
#                                                                                                                   #
#                                                                                                                   #
#                                                                                                                   #
#                                                                                                                   #
#     .........................................................................................................     #
#     .                                                   .                                                   .     #
#     .                                                   .                                                   .     #
#     .                                                   .                                                   .     #
#     .                                                   .                                                   .     #
#     .                                                   .                                                   .     #
#     .                                                   .                                                   .     #
#     .                                                   .                                                   .     #
#     .                                                   .                                                   .     #
#     .                                                   .                                                   .     #
#     .                                                   .                                                   .     #
#     .                                                   .                                                   .     #
#     .                                                   .                                                   .     #
#     .                                                   .                                                   .     #
#     .                                                   .                                                   .     #
#     ................                                    .                                    ................     #
#     .              .                                    .                                    .              .     #
#     .              .                                    .                                    .              .     #
#     .              .                                    .                                    .              .     #
#     .              .                                    .                                    .              .     #
#     .              .                                    .                                    .              .     #
#     .              .                                    .                                    .              .     #
#     .              .                                    .                                    .              .     #
#     .              .                                    .                                    .              .     #
#     .              .                                    .                                    .              .     #
#     .              .                                    .                                    .              .     #
#     #.....         .                                  .....                                  .         .....#     #
#     |    .         .                                ..  .  ..                                .         .    x     #
#     |    .         ..                              .    .    .                              ..         .    x     #
#     |    .         ..                             .     .     .                             ..         .    x     #
#     |    .         . .                           .      .      .                           . .         .    x     #
#     |    .         . .                           .      .      .                           . .         .    x     #
#     |    .         .  .                         .       .       .                         .  .         .    x     #
#     |    .         .  .                         .       .       .                         .  .         .    x     #
#     |    .   .     .  .                         .       .       .                         .  .     .   .    x     #
#     |    .         .  .                         .       .       .                         .  .         .    x     #
#     |    .         .  .                         .       .       .                         .  .         .    x     #
#     |    .         . .                           .      .      .                           . .         .    x     #
#     |    .         . .                           .      .      .                           . .         .    x     #
#     |    .         ..                             .     .     .                             ..         .    x     #
#     |    .         ..                              .    .    .                              ..         .    x     #
#     |    .         .                                ..  .  ..                                .         .    x     #
#     #.....         .                                  .....                                  .         .....#     #
#     .              .                                    .                                    .              .     #
#     .              .                                    .                                    .              .     #
#     .              .                                    .                                    .              .     #
#     .              .                                    .                                    .              .     #
#     .              .                                    .                                    .              .     #
#     .              .                                    .                                    .              .     #
#     .              .                                    .                                    .              .     #
#     .              .                                    .                                    .              .     #
#     .              .                                    .                                    .              .     #
#     .              .                                    .                                    .              .     #
#     ................                                    .                                    ................     #
#     .                                                   .                                                   .     #
#     .                                                   .                                                   .     #
#     .                                                   .                                                   .     #
#     .                                                   .                                                   .     #
#     .                                                   .                                                   .     #
#     .                                                   .                                                   .     #
#     .                                                   .                                                   .     #
#     .                                                   .                                                   .     #
#     .                                                   .                                                   .     #
#     .                                                   .                                                   .     #
#     .                                                   .                                                   .     #
#     .                                                   .                                                   .     #
#     .                                                   .                                                   .     #
#     .                                                   .                                                   .     #
#     .........................................................................................................     #
#                                                                                                                   #
#                                                                                                                   #
#                                                                                                                   #
#                                                                                                                   #
#                                                                                                                   #
#####################################################################################################################`
